//go:build !js

package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws FPS and heap usage in the top-right corner of a raylib window.
// Both readouts are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns an overlay with the given readouts enabled.
func New(showFPS, showMemAlloc bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// Enabled reports whether Draw has anything to show.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc
}

// Draw renders the enabled readouts. Call between BeginDrawing and EndDrawing, after the scene.
func (o *Overlay) Draw() {
	o.frameCount++
	update := o.frameCount%updateInterval == 0
	if (o.ShowFPS && o.fpsText == "") || (o.ShowMemAlloc && o.memText == "") {
		update = true
	}
	if update {
		o.refresh()
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines() {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

func (o *Overlay) refresh() {
	if o.ShowFPS {
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
	}
}

func (o *Overlay) lines() []string {
	var out []string
	if o.ShowFPS && o.fpsText != "" {
		out = append(out, o.fpsText)
	}
	if o.ShowMemAlloc && o.memText != "" {
		out = append(out, o.memText)
	}
	return out
}

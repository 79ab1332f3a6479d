//go:build !js

package graphics

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spinning-cube/internal/debug"
	"spinning-cube/internal/gfx"
	"spinning-cube/internal/gldevice"
)

// Raylib is a window opened through raylib. raylib owns the context, the buffer swap and
// frame pacing; the cube is drawn with raw GL calls between BeginDrawing and EndDrawing.
type Raylib struct {
	dev     *gldevice.Device
	overlay *debug.Overlay
}

// OpenRaylib creates the window and loads GL for its context.
func OpenRaylib(o Options) (*Raylib, error) {
	var flags uint32 = rl.FlagMsaa4xHint
	if o.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(o.Width), int32(o.Height), o.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("graphics: raylib: %w: window could not be created", gfx.ErrUnsupported)
	}
	// ESC would otherwise close the window; close via the window button.
	rl.SetExitKey(rl.KeyNull)
	if o.TargetFPS > 0 {
		rl.SetTargetFPS(int32(o.TargetFPS))
	}

	dev, err := gldevice.New()
	if err != nil {
		rl.CloseWindow()
		return nil, fmt.Errorf("graphics: raylib: %w", err)
	}
	return &Raylib{dev: dev, overlay: debug.New(o.ShowFPS, o.ShowMemAlloc)}, nil
}

func (w *Raylib) Device() gfx.Device {
	return w.dev
}

func (w *Raylib) Describe() string {
	return "raylib, " + w.dev.Version()
}

// Frames calls tick once per frame with raylib's clock in milliseconds.
// The overlay is drawn on top with depth testing off so it is never hidden by the cube.
func (w *Raylib) Frames(ctx context.Context, tick func(now float64)) error {
	for !rl.WindowShouldClose() {
		if err := stopped(ctx); err != nil {
			return err
		}
		rl.BeginDrawing()
		tick(rl.GetTime() * 1000)
		if w.overlay.Enabled() {
			w.dev.Disable(gfx.DepthTest)
			w.overlay.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}

func (w *Raylib) Close() {
	w.dev.Release()
	rl.CloseWindow()
}

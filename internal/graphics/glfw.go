//go:build glfw && !js

package graphics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"spinning-cube/internal/gfx"
	"spinning-cube/internal/gldevice"
)

// GLFW is a window opened directly through GLFW. It has no text overlay.
// raylib links its own copy of GLFW, so this host is only compiled with -tags glfw.
type GLFW struct {
	win       *glfw.Window
	dev       *gldevice.Device
	frameTime time.Duration
}

var _ Window = (*GLFW)(nil)

// OpenGLFW creates a fixed-size window with a 3.3 core context and makes it current.
// The caller must be on the main OS thread.
func OpenGLFW(o Options) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("graphics: glfw: %w: %v", gfx.ErrUnsupported, err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(o.Width, o.Height, o.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("graphics: glfw: %w: %v", gfx.ErrUnsupported, err)
	}
	win.MakeContextCurrent()
	if o.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	dev, err := gldevice.New()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("graphics: glfw: %w", err)
	}
	w := &GLFW{win: win, dev: dev}
	if o.TargetFPS > 0 {
		w.frameTime = time.Second / time.Duration(o.TargetFPS)
	}
	return w, nil
}

func (w *GLFW) Device() gfx.Device {
	return w.dev
}

func (w *GLFW) Describe() string {
	return "glfw " + glfw.GetVersionString() + ", " + w.dev.Version()
}

// Frames calls tick once per frame with GLFW's clock in milliseconds, then swaps and polls events.
func (w *GLFW) Frames(ctx context.Context, tick func(now float64)) error {
	for !w.win.ShouldClose() {
		if err := stopped(ctx); err != nil {
			return err
		}
		start := time.Now()
		tick(glfw.GetTime() * 1000)
		w.win.SwapBuffers()
		glfw.PollEvents()
		if w.frameTime > 0 {
			if rest := w.frameTime - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	return nil
}

func (w *GLFW) Close() {
	w.dev.Release()
	w.win.Destroy()
	glfw.Terminate()
}

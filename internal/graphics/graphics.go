//go:build !js

// Package graphics opens a desktop window with an OpenGL 3.3 core context and drives
// the frame loop. Two toolkits are supported: raylib (default) and GLFW.
// The GLFW host needs -tags glfw and a raylib-go built against an external GLFW.
package graphics

import (
	"context"

	"spinning-cube/internal/animation"
	"spinning-cube/internal/gfx"
)

// Options describe the window to open.
type Options struct {
	Width, Height int
	Title         string
	// TargetFPS caps the frame rate; 0 leaves pacing to vsync.
	TargetFPS    int
	VSync        bool
	ShowFPS      bool
	ShowMemAlloc bool
}

// Window is an open desktop window. Device draws into it and Frames runs its loop
// until the user closes it or ctx is done. Close releases the window and context.
type Window interface {
	animation.Scheduler
	Device() gfx.Device
	// Describe names the toolkit and GL driver for the startup log.
	Describe() string
	Close()
}

var _ Window = (*Raylib)(nil)

// stopped reports whether the loop should end before the next frame.
func stopped(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

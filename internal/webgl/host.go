//go:build js && wasm

package webgl

import (
	"context"
	"fmt"

	"github.com/hack-pad/safejs"

	"spinning-cube/internal/gfx"
)

// Host is a canvas with a WebGL context.
type Host struct {
	window safejs.Value
	dev    *Device
}

// Open finds the canvas matching selector and obtains its WebGL context.
// When the browser cannot provide one the user is alerted and gfx.ErrUnsupported is returned.
func Open(selector string) (*Host, error) {
	window := safejs.Global()
	doc, err := window.Get("document")
	if err != nil {
		return nil, fmt.Errorf("webgl: %w", err)
	}
	canvas, err := doc.Call("querySelector", selector)
	if err != nil {
		return nil, fmt.Errorf("webgl: %w", err)
	}
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, unsupported(window, fmt.Sprintf("No canvas matches %q.", selector))
	}
	gl, err := canvas.Call("getContext", "webgl")
	if err != nil || gl.IsNull() || gl.IsUndefined() {
		return nil, unsupported(window, "Unable to initialize WebGL. Your browser or machine may not support it.")
	}
	dev, err := newDevice(gl, canvas)
	if err != nil {
		return nil, err
	}
	return &Host{window: window, dev: dev}, nil
}

func unsupported(window safejs.Value, msg string) error {
	_, _ = window.Call("alert", msg)
	return fmt.Errorf("webgl: %w: %s", gfx.ErrUnsupported, msg)
}

// Device returns the WebGL device.
func (h *Host) Device() *Device {
	return h.dev
}

// Alert shows msg in a browser dialog.
func (h *Host) Alert(msg string) {
	_, _ = h.window.Call("alert", msg)
}

// Frames schedules tick with requestAnimationFrame and blocks until ctx is done or a
// WebGL call raises an exception. Cancellation is noticed on the next frame. The
// browser passes a DOMHighResTimeStamp in milliseconds. Each callback requests the
// next one after tick returns, so frames never overlap.
func (h *Host) Frames(ctx context.Context, tick func(now float64)) error {
	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	var frame safejs.Func
	request := func() {
		if _, err := h.window.Call("requestAnimationFrame", frame.Value()); err != nil {
			finish(fmt.Errorf("webgl: requestAnimationFrame: %w", err))
		}
	}
	frame, err := safejs.FuncOf(func(_ safejs.Value, args []safejs.Value) any {
		if err := ctx.Err(); err != nil {
			finish(err)
			return nil
		}
		var now float64
		if len(args) > 0 {
			now, _ = args[0].Float()
		}
		tick(now)
		if err := h.dev.Err(); err != nil {
			finish(err)
			return nil
		}
		request()
		return nil
	})
	if err != nil {
		return fmt.Errorf("webgl: %w", err)
	}
	defer frame.Release()

	request()
	return <-done
}

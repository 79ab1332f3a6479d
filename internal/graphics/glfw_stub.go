//go:build !glfw && !js

package graphics

import (
	"fmt"

	"spinning-cube/internal/gfx"
)

// OpenGLFW fails in binaries built without the glfw tag.
func OpenGLFW(Options) (Window, error) {
	return nil, fmt.Errorf("graphics: glfw: %w: built without -tags glfw", gfx.ErrUnsupported)
}

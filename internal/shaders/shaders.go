// Package shaders holds the GLSL text for the cube program. Sources are embedded per
// GLSL dialect and may be replaced by files named in the config.
package shaders

import (
	"embed"
	"fmt"
	"os"

	"spinning-cube/internal/shader"
)

//go:embed glsl
var glsl embed.FS

// Dialect selects the GLSL flavor a device accepts.
type Dialect string

const (
	// GLSL330 targets OpenGL 3.3 core profile (desktop hosts).
	GLSL330 Dialect = "330"
	// GLSL100 targets WebGL 1 (GLSL ES 1.00).
	GLSL100 Dialect = "100"
)

// For returns the embedded sources for d.
func For(d Dialect) (shader.Sources, error) {
	vs, err := glsl.ReadFile("glsl/cube." + string(d) + ".vert")
	if err != nil {
		return shader.Sources{}, fmt.Errorf("shaders: unknown dialect %q: %w", d, err)
	}
	fs, err := glsl.ReadFile("glsl/cube." + string(d) + ".frag")
	if err != nil {
		return shader.Sources{}, fmt.Errorf("shaders: unknown dialect %q: %w", d, err)
	}
	return shader.Sources{Vertex: string(vs), Fragment: string(fs)}, nil
}

// Load returns base with each stage replaced by the contents of its file when a path is given.
// Files are read once at startup; they are not watched.
func Load(base shader.Sources, vertexPath, fragmentPath string) (shader.Sources, error) {
	out := base
	if vertexPath != "" {
		data, err := os.ReadFile(vertexPath)
		if err != nil {
			return base, fmt.Errorf("shaders: vertex: %w", err)
		}
		out.Vertex = string(data)
	}
	if fragmentPath != "" {
		data, err := os.ReadFile(fragmentPath)
		if err != nil {
			return base, fmt.Errorf("shaders: fragment: %w", err)
		}
		out.Fragment = string(data)
	}
	return out, nil
}

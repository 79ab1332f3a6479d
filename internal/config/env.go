package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPath is the dotenv file consulted at startup.
const DefaultEnvPath = ".env"

// LoadEnv parses a dotenv file into a map. Lines are KEY=VALUE; blank lines and
// lines starting with # are skipped, and matching surrounding quotes are removed.
// A missing file yields an empty map.
func LoadEnv(path string) (map[string]string, error) {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return vars, nil
	}
	if err != nil {
		return vars, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if !ok || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return vars, fmt.Errorf("config: %s: %w", path, err)
	}
	return vars, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// Lookup chains variable sources; the first source that has a key wins.
func Lookup(sources ...func(string) (string, bool)) func(string) (string, bool) {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if v, ok := src(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// MapLookup adapts a map (e.g. from LoadEnv) to a lookup function.
func MapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ApplyEnv overrides prefs from CUBE_* variables:
// CUBE_BACKEND, CUBE_WIDTH, CUBE_HEIGHT, CUBE_TITLE, CUBE_FPS, CUBE_VSYNC,
// CUBE_SHOW_FPS, CUBE_SHOW_MEMALLOC, CUBE_LOG, CUBE_VERTEX_SHADER, CUBE_FRAGMENT_SHADER.
func ApplyEnv(p *Prefs, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"CUBE_BACKEND":         &p.Backend,
		"CUBE_TITLE":           &p.Title,
		"CUBE_LOG":             &p.LogPath,
		"CUBE_VERTEX_SHADER":   &p.VertexShader,
		"CUBE_FRAGMENT_SHADER": &p.FragmentShader,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	ints := map[string]*int{
		"CUBE_WIDTH":  &p.Width,
		"CUBE_HEIGHT": &p.Height,
		"CUBE_FPS":    &p.TargetFPS,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = n
	}
	bools := map[string]*bool{
		"CUBE_VSYNC":         &p.VSync,
		"CUBE_SHOW_FPS":      &p.ShowFPS,
		"CUBE_SHOW_MEMALLOC": &p.ShowMemAlloc,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

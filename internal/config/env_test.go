package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := `# window
CUBE_BACKEND=glfw
export CUBE_TITLE="hello cube"
CUBE_LOG='logs/x.txt'

=novalue
garbage
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	vars, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CUBE_BACKEND": "glfw",
		"CUBE_TITLE":   "hello cube",
		"CUBE_LOG":     "logs/x.txt",
	}, vars)
}

func TestLoadEnvMissing(t *testing.T) {
	vars, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestApplyEnv(t *testing.T) {
	p := Default()
	lookup := Lookup(
		MapLookup(map[string]string{"CUBE_WIDTH": "1024", "CUBE_SHOW_FPS": "true"}),
		MapLookup(map[string]string{"CUBE_WIDTH": "1", "CUBE_BACKEND": "glfw", "CUBE_VSYNC": "0"}),
	)
	require.NoError(t, ApplyEnv(&p, lookup))
	assert.Equal(t, 1024, p.Width)
	assert.Equal(t, BackendGLFW, p.Backend)
	assert.True(t, p.ShowFPS)
	assert.False(t, p.VSync)
	assert.Equal(t, 600, p.Height)
}

func TestApplyEnvBadValue(t *testing.T) {
	p := Default()
	err := ApplyEnv(&p, MapLookup(map[string]string{"CUBE_FPS": "fast"}))
	assert.ErrorContains(t, err, "CUBE_FPS")
	err = ApplyEnv(&p, MapLookup(map[string]string{"CUBE_VSYNC": "maybe"}))
	assert.ErrorContains(t, err, "CUBE_VSYNC")
}

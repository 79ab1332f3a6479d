package webgl

import (
	"errors"

	"spinning-cube/internal/gfx"
	"spinning-cube/internal/shader"
)

// StartupAlert words the dialog shown when the cube fails to start. An exception
// recorded by the device wins over err, since it also empties the compile and link logs.
func StartupAlert(jsErr, err error) string {
	if jsErr != nil {
		return "WebGL raised an exception: " + jsErr.Error()
	}
	var (
		ce *shader.CompileError
		le *shader.LinkError
	)
	switch {
	case errors.As(err, &ce), errors.As(err, &le):
		return "Unable to initialize the shader program: " + err.Error()
	case errors.Is(err, gfx.ErrBufferAlloc):
		return "Unable to allocate the cube's buffers: " + err.Error()
	}
	return "Unable to start: " + err.Error()
}

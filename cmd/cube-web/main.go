//go:build js && wasm

// Command cube-web draws the spinning cube into the page's #glcanvas.
// Build with GOOS=js GOARCH=wasm and serve web/index.html next to the binary and wasm_exec.js.
package main

import (
	"context"
	"os"

	"spinning-cube/internal/animation"
	"spinning-cube/internal/config"
	"spinning-cube/internal/logger"
	"spinning-cube/internal/shaders"
	"spinning-cube/internal/webgl"
)

func main() {
	prefs := config.Default()
	// No file system in the browser: lines go to the console only.
	log := logger.New("", os.Stderr)

	host, err := webgl.Open(prefs.Canvas)
	if err != nil {
		log.Log("fatal: " + err.Error())
		return
	}
	src, err := shaders.For(shaders.GLSL100)
	if err != nil {
		log.Log("fatal: " + err.Error())
		return
	}
	drv, err := animation.New(host.Device(), src, log)
	if err != nil {
		jsErr := host.Device().Err()
		if jsErr != nil {
			log.Log("fatal: " + jsErr.Error())
		}
		log.Log("fatal: " + err.Error())
		host.Alert(webgl.StartupAlert(jsErr, err))
		return
	}
	if err := drv.Run(context.Background(), host); err != nil {
		log.Log("fatal: " + err.Error())
	}
}

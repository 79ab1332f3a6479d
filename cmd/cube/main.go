//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"spinning-cube/internal/animation"
	"spinning-cube/internal/config"
	"spinning-cube/internal/graphics"
	"spinning-cube/internal/logger"
	"spinning-cube/internal/shaders"
)

// GL contexts belong to the thread that created them; keep main on the startup thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "prefs file (.yaml, .yml, .toml or .json)")
	envPath := flag.String("env", config.DefaultEnvPath, "dotenv file with CUBE_* overrides")
	var override config.Prefs
	flag.StringVar(&override.Backend, "backend", "", "window backend: raylib or glfw")
	flag.IntVar(&override.Width, "width", 0, "window width in pixels")
	flag.IntVar(&override.Height, "height", 0, "window height in pixels")
	flag.BoolVar(&override.ShowFPS, "fps", false, "show the FPS overlay (raylib only)")
	flag.Parse()

	if err := run(*configPath, *envPath, override); err != nil {
		os.Exit(1)
	}
}

// run loads prefs (file, then .env and process environment, then flags), opens the window
// and drives the cube until the window closes or the process is interrupted.
func run(configPath, envPath string, override config.Prefs) error {
	prefs, loadErr := config.Load(configPath)
	vars, envErr := config.LoadEnv(envPath)
	applyErr := config.ApplyEnv(&prefs, config.Lookup(os.LookupEnv, config.MapLookup(vars)))
	mergeErr := config.Merge(&prefs, override)

	log := logger.New(prefs.LogPath, os.Stderr)
	for _, err := range []error{loadErr, envErr, applyErr, mergeErr} {
		if err != nil {
			log.Log("config ignored: " + err.Error())
		}
	}
	if err := prefs.Validate(); err != nil {
		log.Log("fatal: " + err.Error())
		return err
	}

	src, err := shaders.For(shaders.GLSL330)
	if err == nil {
		src, err = shaders.Load(src, prefs.VertexShader, prefs.FragmentShader)
	}
	if err != nil {
		log.Log("fatal: " + err.Error())
		return err
	}

	win, err := open(prefs)
	if err != nil {
		log.Log("fatal: " + err.Error())
		return err
	}
	defer win.Close()
	log.Logf("window %dx%d via %s", prefs.Width, prefs.Height, win.Describe())

	drv, err := animation.New(win.Device(), src, log)
	if err != nil {
		log.Log("fatal: " + err.Error())
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := drv.Run(ctx, win); err != nil && !errors.Is(err, context.Canceled) {
		log.Log("fatal: " + err.Error())
		return err
	}
	return nil
}

func open(p config.Prefs) (graphics.Window, error) {
	o := graphics.Options{
		Width:        p.Width,
		Height:       p.Height,
		Title:        p.Title,
		TargetFPS:    p.TargetFPS,
		VSync:        p.VSync,
		ShowFPS:      p.ShowFPS,
		ShowMemAlloc: p.ShowMemAlloc,
	}
	if p.Backend == config.BackendGLFW {
		w, err := graphics.OpenGLFW(o)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	w, err := graphics.OpenRaylib(o)
	if err != nil {
		return nil, err
	}
	return w, nil
}

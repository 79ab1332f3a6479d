package animation

import (
	"context"
	"fmt"
	"strings"

	"spinning-cube/internal/buffers"
	"spinning-cube/internal/geometry"
	"spinning-cube/internal/gfx"
	"spinning-cube/internal/logger"
	"spinning-cube/internal/render"
	"spinning-cube/internal/shader"
)

// State is the animation clock. It is a plain value: Tick returns the next state
// instead of mutating shared variables.
type State struct {
	// Rotation is the accumulated angle in radians.
	Rotation float32

	then    float64
	started bool
}

// Elapsed returns the seconds between the previous tick and now (milliseconds).
// The first tick has no previous timestamp and reports 0.
func (s State) Elapsed(now float64) float32 {
	if !s.started {
		return 0
	}
	return float32((now - s.then) / 1000)
}

// Tick draws with the current rotation, then advances it by the elapsed time.
func (s State) Tick(now float64, draw func(rotation float32)) State {
	elapsed := s.Elapsed(now)
	if draw != nil {
		draw(s.Rotation)
	}
	s.Rotation += elapsed
	s.then = now
	s.started = true
	return s
}

// Scheduler is the host's per-frame primitive. Frames calls tick once per display
// refresh with a monotonically increasing timestamp in milliseconds, on the calling
// goroutine, until the host tears down or ctx is done.
type Scheduler interface {
	Frames(ctx context.Context, tick func(now float64)) error
}

// Driver owns the program, the buffers and the animation state for the process lifetime.
type Driver struct {
	dev     gfx.Device
	program *shader.Program
	buffers buffers.Set
	state   State
	log     *logger.Logger
}

// New builds the shader program and uploads the cube. A shader or buffer failure
// is returned and the caller must not start the loop.
func New(dev gfx.Device, src shader.Sources, log *logger.Logger) (*Driver, error) {
	p, err := shader.Build(dev, src)
	if err != nil {
		return nil, fmt.Errorf("animation: %w", err)
	}
	if missing := p.Unresolved(); len(missing) > 0 && log != nil {
		log.Logf("shader inputs not found, drawing without them: %s", strings.Join(missing, ", "))
	}
	b, err := buffers.Upload(dev, geometry.Cube())
	if err != nil {
		dev.DeleteProgram(p.Handle)
		return nil, fmt.Errorf("animation: %w", err)
	}
	if log != nil {
		w, h := dev.Viewport()
		log.Logf("cube ready: %d indices, viewport %dx%d", b.IndexCount, w, h)
	}
	return &Driver{dev: dev, program: p, buffers: b, log: log}, nil
}

// State returns the current animation state.
func (d *Driver) State() State {
	return d.state
}

// Tick renders one frame at timestamp now (milliseconds) and advances the rotation.
func (d *Driver) Tick(now float64) {
	d.state = d.state.Tick(now, d.draw)
}

func (d *Driver) draw(rotation float32) {
	render.Draw(d.dev, d.program, d.buffers, rotation)
}

// Run hands Tick to the scheduler and blocks until the frame loop ends.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	err := sched.Frames(ctx, d.Tick)
	if d.log != nil {
		d.log.Logf("frame loop stopped at rotation %.3f rad", d.state.Rotation)
	}
	return err
}

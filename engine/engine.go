package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/camera"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/profiler"
	"github.com/Carmen-Shannon/giterate/engine/sandbox"
	"github.com/go-gl/mathgl/mgl32"
)

// axisLength is the length of the world axis lines drawn before the sandbox.
const axisLength = 1000

// Presenter consumes a finished frame. It runs on the frame loop goroutine after the sandbox
// has drawn; the frame is only valid until the call returns.
type Presenter func(frame *immediate.Frame, cam camera.Camera, dt float32) error

// engine implements the Engine interface.
// A single goroutine drives every frame: the sandbox, its renderer and its caches are never
// touched concurrently.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	initOnce    sync.Once

	sandbox   sandbox.Sandbox
	renderer  immediate.Renderer
	camera    camera.Camera
	presenter Presenter

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	showAxes  bool
	maxFrames uint64
	frames    atomic.Uint64
}

// Engine is the main entry point for the sandbox application.
// It runs the fixed-rate frame loop: reset, axes, sandbox draw, present, profile.
type Engine interface {
	// Sandbox returns the sandbox driven by the engine.
	//
	// Returns:
	//   - sandbox.Sandbox: the sandbox
	Sandbox() sandbox.Sandbox

	// Renderer returns the immediate renderer the frames are collected in.
	//
	// Returns:
	//   - immediate.Renderer: the renderer
	Renderer() immediate.Renderer

	// Camera returns the camera handed to the presenter.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the frame rate in frames per second.
	// Safe to call from another goroutine while Run is active.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called at the start of each frame, before drawing.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetPresenter registers the consumer of finished frames.
	//
	// Parameters:
	//   - p: the presenter, or nil to discard frames
	SetPresenter(p Presenter)

	// Frames returns the number of frames completed so far.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Step runs one frame with the given delta time, initializing the sandbox first if needed.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - error: the presenter's error, if any
	Step(dt float32) error

	// Run drives frames at the tick rate until ctx is done, Quit is called, the frame limit
	// is reached or the presenter fails.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: the presenter's error, or nil on a normal stop
	Run(ctx context.Context) error

	// Quit stops Run. Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine driving s.
// Defaults: 60 Hz, axes shown, no frame limit, profiler disabled, a fresh renderer and camera.
//
// Parameters:
//   - s: the sandbox to drive
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(s sandbox.Sandbox, options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		sandbox:         s,
		engineTickRate:  time.Second / 60,
		showAxes:        true,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = immediate.NewRenderer()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	return e
}

func (e *engine) Sandbox() sandbox.Sandbox {
	return e.sandbox
}

func (e *engine) Renderer() immediate.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Frames() uint64 {
	return e.frames.Load()
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Run(ctx context.Context) error {
	e.initOnce.Do(e.sandbox.Init)

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()
	for !e.limitReached() {
		select {
		case <-ctx.Done():
			return nil
		case <-e.quitChannel:
			return nil
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			if err := e.Step(dt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *engine) Step(dt float32) error {
	e.initOnce.Do(e.sandbox.Init)

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	e.renderer.Reset()
	if e.showAxes {
		drawAxes(e.renderer)
	}
	e.sandbox.Draw(dt, e.renderer)

	if !e.renderer.Balanced() {
		common.Logger().Warn("unbalanced draw stacks at end of frame",
			"sandbox", e.sandbox.Name(),
			"frame", e.frames.Load(),
			"color_depth", e.renderer.ColorDepth(),
			"transform_depth", e.renderer.TransformDepth())
	}

	frame := e.renderer.Frame()
	if e.presenter != nil {
		if err := e.presenter(frame, e.camera, dt); err != nil {
			return fmt.Errorf("failed to present frame %d: %w", e.frames.Load(), err)
		}
	}

	if e.profilingEnabled {
		e.profiler.Tick(frame.Primitives())
	}
	e.frames.Add(1)
	return nil
}

func (e *engine) limitReached() bool {
	return e.maxFrames > 0 && e.frames.Load() >= e.maxFrames
}

// drawAxes draws the world X, Y and Z axes in red, green and blue.
func drawAxes(d immediate.Drawer) {
	axes := []struct {
		color mgl32.Vec4
		end   mgl32.Vec3
	}{
		{common.Red, mgl32.Vec3{axisLength, 0, 0}},
		{common.Green, mgl32.Vec3{0, axisLength, 0}},
		{common.Blue, mgl32.Vec3{0, 0, axisLength}},
	}
	for _, a := range axes {
		d.PushColor(a.color)
		d.DrawLine(mgl32.Vec3{}, a.end)
		d.PopColor()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the frame rate in frames per second.
// The running loop picks the change up on its next iteration.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)
	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each frame.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetPresenter registers the frame consumer.
func (e *engine) SetPresenter(p Presenter) {
	e.presenter = p
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// Package engine provides the run loop that drives a window's frame cycle
// with a fixed-timestep tick callback and a per-frame render callback.
//
// The loop is single-threaded: the native library requires that window
// creation, input polling and drawing all happen on the same OS thread, so
// ticks are drained inside the frame loop with an accumulator instead of on a
// separate goroutine.
package engine

import (
	"log"
	"sync"
	"time"

	"raycam/engine/profiler"
	"raycam/engine/window"
)

// maxFrameDelta caps the per-frame time used by the tick accumulator so a
// stall (window drag, debugger pause) does not trigger a burst of ticks.
const maxFrameDelta = 250 * time.Millisecond

// engine implements the Engine interface.
type engine struct {
	running  bool
	quitOnce sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	accumulator time.Duration
	lastFrame   time.Time
}

// Engine is the main entry point for the run loop.
// It orchestrates the frame cycle, tick timing, and window teardown.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers the function called each fixed-timestep tick.
	// Use this for game logic and camera updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame,
	// inside the native draw pass.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// Run starts the main loop (blocks until the window closes).
	// Must be called from the thread that created the window.
	Run()

	// Quit stops the loop and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, window)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:       profiler.NewProfiler(),
		engineTickRate: time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	// Recover from panics inside frame callbacks so the native window is
	// closed cleanly instead of leaking the GL context.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine loop recovered from panic: %v", r)
		}
		e.Quit()
	}()

	e.running = true
	e.lastFrame = time.Now()

	e.window.SetUpdateCallback(e.step)
	e.window.SetRenderCallback(e.renderFrame)
	e.window.ProcessMessages()
}

// Quit stops the loop and closes the window.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("failed to close window: %v", err)
			}
		}
	})
}

// step advances frame timing and drains the tick accumulator, firing the tick
// callback once per whole tick interval elapsed since the previous frame.
func (e *engine) step() {
	now := time.Now()
	frame := now.Sub(e.lastFrame)
	e.lastFrame = now

	if frame > maxFrameDelta {
		frame = maxFrameDelta
	}
	e.accumulator += frame

	dt := float32(e.engineTickRate.Seconds())
	for e.accumulator >= e.engineTickRate {
		e.accumulator -= e.engineTickRate
		if e.tickCallback != nil {
			e.tickCallback(dt)
		}
	}
}

// renderFrame fires the render callback inside the native draw pass and feeds
// the profiler.
func (e *engine) renderFrame() {
	if e.renderCallback != nil {
		e.renderCallback(float32(time.Since(e.lastFrame).Seconds()))
	}
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
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

// SetTickRate sets the engine tick rate in ticks per second.
// Takes effect at the next frame; the loop reads the rate every frame.
func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	e.engineTickRate = time.Duration(float64(time.Second) / tps)
}

// SetTickCallback registers the function called each fixed-timestep tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

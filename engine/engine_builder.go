package engine

import (
	"time"

	"raycam/engine/window"
)

// EngineBuilderOption is a functional option for configuring an engine.
// Use the With* functions to create options.
type EngineBuilderOption func(e *engine)

// WithWindow attaches the window the engine drives.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
//
// Parameters:
//   - tps: target ticks per second (defaults to 60 if <= 0)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps <= 0 {
			tps = 60
		}
		e.engineTickRate = time.Duration(float64(time.Second) / tps)
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: whether profiling output is on
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// Package window wraps the native library's window lifecycle behind the
// library's Window interface. The native library owns the event loop, the GL
// context and input polling; this package only manages creation, the frame
// loop and teardown.
package window

import (
	"fmt"
	"runtime"
)

// Window provides native windowing and the per-frame message loop.
type Window interface {
	// SetUpdateCallback sets the function called each frame before drawing.
	// Use it for input processing and camera updates.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetRenderCallback sets the function called each frame between the
	// native begin/end drawing calls, after the background clear.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetRenderCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetTargetFPS sets the native frame rate cap.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetTargetFPS(fps int32)

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases native resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the frame loop. Blocks until the window is closed.
	// Each frame: poll native events, fire the update callback, then drive a
	// native draw pass around the render callback. Must be called from the
	// thread that created the window.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// platform is the native backend behind a Window. raylibWindow is the
// production implementation; tests substitute their own.
type platform interface {
	// setTargetFPS forwards the frame cap to the native library.
	setTargetFPS(fps int32)

	// isRunning reports whether the native window is still active.
	isRunning() bool

	// close tears down the native window and its GL context. After close
	// returns, no other platform method may be called.
	close() error

	// processMessages polls native events for the frame and reports whether
	// the loop should continue.
	processMessages() bool

	// beginFrame starts the native draw pass and clears the background.
	beginFrame()

	// endFrame ends the native draw pass (buffer swap, input poll, frame cap).
	endFrame()
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, native window state, and frame callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// targetFPS is the native frame rate cap (0 = uncapped).
	targetFPS int32

	// configFlags are native window flags applied before creation
	// (resizable, MSAA, vsync, ...).
	configFlags uint32

	// exitKey is the key that closes the window (0 disables the default).
	exitKey int32

	// background is the clear color applied at the start of each frame.
	background [4]uint8

	// internalWindow holds the native backend (raylibWindow in production).
	internalWindow platform

	// onUpdate is called each frame before drawing (if set).
	onUpdate func()

	// onRender is called each frame inside the native draw pass (if set).
	onRender func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order. The native window
// is created immediately; the calling goroutine is locked to its OS thread for
// the lifetime of the window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:      "Default Window Title",
		width:      1280,
		height:     720,
		targetFPS:  60,
		background: [4]uint8{245, 245, 245, 255}, // native "ray white"
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetRenderCallback(callback func()) {
	w.onRender = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetTargetFPS(fps int32) {
	w.targetFPS = fps
	if w.internalWindow != nil {
		w.internalWindow.setTargetFPS(fps)
	}
}

func (w *engineWindow) IsRunning() bool {
	return w.internalWindow != nil && w.internalWindow.isRunning()
}

func (w *engineWindow) Close() error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	return w.internalWindow.close()
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := w.internalWindow.processMessages(); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}
		// The update callback is the documented place to stop the loop
		// (Engine.Quit closes the window from it). Closing destroys the
		// native GL context, so never start a draw pass afterwards.
		if !w.IsRunning() {
			break
		}

		w.internalWindow.beginFrame()
		if w.onRender != nil {
			w.onRender()
		}
		// Same for the render callback: skip the buffer swap on a window
		// that was closed mid-frame.
		if !w.IsRunning() {
			break
		}
		w.internalWindow.endFrame()

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

package window

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibWindow implements the platform interface over the native library.
type raylibWindow struct {
	parent  *engineWindow
	running bool
}

var _ platform = &raylibWindow{}

// newPlatformWindow creates the native window and stores the native state as
// the internal window. The native library registers its own input callbacks
// internally; input is polled, not delivered through callbacks.
//
// Reference: https://pkg.go.dev/github.com/gen2brain/raylib-go/raylib#InitWindow
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if w.configFlags != 0 {
		rl.SetConfigFlags(w.configFlags)
	}

	rl.InitWindow(int32(w.width), int32(w.height), w.title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to initialize native window")
	}

	rw := &raylibWindow{
		parent:  w,
		running: true,
	}
	w.internalWindow = rw

	// Zero disables the default escape-to-quit binding so escape stays
	// available as a camera control.
	rl.SetExitKey(w.exitKey)

	if w.targetFPS > 0 {
		rl.SetTargetFPS(w.targetFPS)
	}

	// Update stored dimensions to reflect the actual framebuffer size (may
	// differ from requested on high-DPI displays).
	w.width = int(rl.GetScreenWidth())
	w.height = int(rl.GetScreenHeight())

	return nil
}

func (rw *raylibWindow) setTargetFPS(fps int32) {
	rl.SetTargetFPS(fps)
}

func (rw *raylibWindow) isRunning() bool {
	return rw.running
}

// close tears down the native window and unloads the GL context. The running
// flag is cleared first so the frame loop stops issuing native calls.
func (rw *raylibWindow) close() error {
	rw.running = false
	rl.CloseWindow()
	return nil
}

// processMessages polls native events for the frame and reports whether the
// loop should continue. Event polling happens inside the native end-drawing
// call, so the only work here is the close check and resize propagation.
//
// Reference: https://pkg.go.dev/github.com/gen2brain/raylib-go/raylib#WindowShouldClose
func (rw *raylibWindow) processMessages() bool {
	if rl.WindowShouldClose() {
		rw.running = false
		return false
	}

	if rl.IsWindowResized() {
		w := rw.parent
		w.width = int(rl.GetScreenWidth())
		w.height = int(rl.GetScreenHeight())
		if w.onResize != nil {
			w.onResize(w.width, w.height)
		}
	}

	return rw.running
}

func (rw *raylibWindow) beginFrame() {
	bg := rw.parent.background
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(bg[0], bg[1], bg[2], bg[3]))
}

// endFrame ends the native draw pass. The native library swaps buffers, polls
// input events and applies the frame cap here.
func (rw *raylibWindow) endFrame() {
	rl.EndDrawing()
}

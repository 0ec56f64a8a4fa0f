package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithTargetFPS sets the native frame rate cap.
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTargetFPS(fps int32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.targetFPS = fps
	}
}

// WithConfigFlags sets native window flags applied before creation
// (resizable, MSAA, vsync, ...). Flag values are the native library's.
//
// Parameters:
//   - flags: native config flags, OR-ed together
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithConfigFlags(flags uint32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.configFlags = flags
	}
}

// WithExitKey sets the key that closes the window. Zero disables the native
// default (escape).
//
// Parameters:
//   - key: the native key code
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithExitKey(key int32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.exitKey = key
	}
}

// WithBackground sets the clear color applied at the start of each frame.
//
// Parameters:
//   - r, g, b, a: the color components
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithBackground(r, g, b, a uint8) WindowBuilderOption {
	return func(w *engineWindow) {
		w.background = [4]uint8{r, g, b, a}
	}
}

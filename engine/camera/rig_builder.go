package camera

// RigOption is a functional option for configuring a rigImpl.
// Use the With* functions to create options.
type RigOption func(r *rigImpl)

// WithMode selects the camera mode.
//
// Parameters:
//   - mode: the mode to select
//
// Returns:
//   - RigOption: option function to apply
func WithMode(mode Mode) RigOption {
	return func(r *rigImpl) {
		r.mode = mode
	}
}

// WithPanControl binds the pan mouse button.
//
// Parameters:
//   - button: the native mouse-button code
//
// Returns:
//   - RigOption: option function to apply
func WithPanControl(button int32) RigOption {
	return func(r *rigImpl) {
		r.panControl = button
	}
}

// WithAltControl binds the mouse-look key.
//
// Parameters:
//   - key: the native key code
//
// Returns:
//   - RigOption: option function to apply
func WithAltControl(key int32) RigOption {
	return func(r *rigImpl) {
		r.altControl = key
	}
}

// WithSmoothZoomControl binds the smooth zoom key.
//
// Parameters:
//   - key: the native key code
//
// Returns:
//   - RigOption: option function to apply
func WithSmoothZoomControl(key int32) RigOption {
	return func(r *rigImpl) {
		r.smoothZoomControl = key
	}
}

// WithMoveControls binds the six movement keys.
//
// Parameters:
//   - front, back, right, left, up, down: the native key codes
//
// Returns:
//   - RigOption: option function to apply
func WithMoveControls(front, back, right, left, up, down int32) RigOption {
	return func(r *rigImpl) {
		r.moveFront = front
		r.moveBack = back
		r.moveRight = right
		r.moveLeft = left
		r.moveUp = up
		r.moveDown = down
	}
}

// WithMoveSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - RigOption: option function to apply
func WithMoveSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.moveSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse-look sensitivity in degrees per pixel.
//
// Parameters:
//   - sensitivity: the sensitivity
//
// Returns:
//   - RigOption: option function to apply
func WithMouseSensitivity(sensitivity float32) RigOption {
	return func(r *rigImpl) {
		r.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed in world units per wheel step.
//
// Parameters:
//   - speed: the zoom speed
//
// Returns:
//   - RigOption: option function to apply
func WithZoomSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.zoomSpeed = speed
	}
}

package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

// Pan drags translate at a fixed fraction of a world unit per pixel so the
// feel does not depend on the frame rate.
const panUnitsPerPixel = 0.05

// smoothZoomScale is applied to the wheel delta while the smooth zoom key is held.
const smoothZoomScale = 0.1

// UpdateCamera updates the camera for the rig's selected mode. Call once per
// frame between native input polling and drawing; requires an initialized
// native window.
//
// The camera is converted to the native struct, handed to the native update
// routine, which mutates position, target and up from the current input state,
// and copied back field-by-field. The projection tag is restored from the
// pre-update value, so an update can never change it.
//
// For the four built-in modes the whole update is the native library's. In
// ModeCustom the rig samples its bound controls through the native input API
// and delegates the motion math to the native parametric update.
//
// Parameters:
//   - r: the rig holding mode and control bindings
//   - cam: the camera to update in place
func UpdateCamera[T common.Float](r Rig, cam *Camera3D[T]) {
	projection := cam.projection
	native := cam.Native()

	if mode := r.Mode(); mode == ModeCustom {
		movement, rotation, zoom := r.controlDeltas()
		rl.UpdateCameraPro(&native, movement, rotation, zoom)
	} else {
		rl.UpdateCamera(&native, rl.CameraMode(mode))
	}

	*cam = Camera3DFromNative[T](native)
	cam.projection = projection
}

// controlDeltas implements the classic pan/alt/smooth-zoom control scheme on
// top of the native input queries. Movement is (forward, right, up) in world
// units, rotation is (yaw, pitch, roll) in degrees, zoom is a distance delta
// toward the target.
func (r *rigImpl) controlDeltas() (movement, rotation rl.Vector3, zoom float32) {
	step := r.moveSpeed * rl.GetFrameTime()
	if rl.IsKeyDown(r.moveFront) {
		movement.X += step
	}
	if rl.IsKeyDown(r.moveBack) {
		movement.X -= step
	}
	if rl.IsKeyDown(r.moveRight) {
		movement.Y += step
	}
	if rl.IsKeyDown(r.moveLeft) {
		movement.Y -= step
	}
	if rl.IsKeyDown(r.moveUp) {
		movement.Z += step
	}
	if rl.IsKeyDown(r.moveDown) {
		movement.Z -= step
	}

	delta := rl.GetMouseDelta()
	if rl.IsKeyDown(r.altControl) {
		rotation.X = delta.X * r.mouseSensitivity
		rotation.Y = delta.Y * r.mouseSensitivity
	}
	if rl.IsMouseButtonDown(rl.MouseButton(r.panControl)) {
		// Dragging right moves the view left, matching the classic pan feel.
		movement.Y -= delta.X * panUnitsPerPixel
		movement.Z += delta.Y * panUnitsPerPixel
	}

	wheel := rl.GetMouseWheelMove()
	if rl.IsKeyDown(r.smoothZoomControl) {
		wheel *= smoothZoomScale
	}
	// Wheel up moves toward the target.
	zoom = -wheel * r.zoomSpeed
	return
}

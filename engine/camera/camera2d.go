package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

// Zoom bounds for ZoomAt. Outside this range the native transform degenerates
// into useless magnifications, so the helper clamps.
const (
	minZoom = 0.1
	maxZoom = 5.0
)

// Camera2D is a generic 2D camera. Unlike Camera3D it carries no hidden state:
// all four fields are public and the zero value is valid apart from Zoom, which
// the native library expects to be non-zero (1.0 means no zoom).
type Camera2D[T common.Float] struct {
	// Offset is the camera offset (displacement from target), in screen pixels.
	Offset common.Vector2[T]
	// Target is the camera target (rotation and zoom origin), in world units.
	Target common.Vector2[T]
	// Rotation is the camera rotation in degrees.
	Rotation float32
	// Zoom is the camera zoom (scaling); 1.0 by convention.
	Zoom float32
}

// NewCamera2D creates a 2D camera from its components. No input validation is
// performed; a zero zoom passes through to the native library uninterpreted.
//
// Parameters:
//   - offset: camera offset in screen pixels
//   - target: camera target in world units
//   - rotation: camera rotation in degrees
//   - zoom: camera zoom factor
//
// Returns:
//   - Camera2D[T]: the constructed camera
func NewCamera2D[T common.Float](offset, target common.Vector2[T], rotation, zoom float32) Camera2D[T] {
	return Camera2D[T]{
		Offset:   offset,
		Target:   target,
		Rotation: rotation,
		Zoom:     zoom,
	}
}

// Native converts the camera to the native library's fixed-precision struct.
// The conversion is an explicit field-by-field copy: float64 components narrow
// to float32.
//
// Returns:
//   - rl.Camera2D: the native camera value
func (c Camera2D[T]) Native() rl.Camera2D {
	return rl.Camera2D{
		Offset:   c.Offset.Raylib(),
		Target:   c.Target.Raylib(),
		Rotation: c.Rotation,
		Zoom:     c.Zoom,
	}
}

// Camera2DFromNative converts a native camera struct to the generic
// representation with an explicit field-by-field copy.
//
// Parameters:
//   - n: the native camera value
//
// Returns:
//   - Camera2D[T]: the generic camera
func Camera2DFromNative[T common.Float](n rl.Camera2D) Camera2D[T] {
	return Camera2D[T]{
		Offset:   common.Vector2FromRaylib[T](n.Offset),
		Target:   common.Vector2FromRaylib[T](n.Target),
		Rotation: n.Rotation,
		Zoom:     n.Zoom,
	}
}

// WorldToScreen converts a world position to screen coordinates through the
// native camera transform.
//
// Parameters:
//   - p: the world-space position
//
// Returns:
//   - common.Vector2[T]: the screen-space position in pixels
func (c Camera2D[T]) WorldToScreen(p common.Vector2[T]) common.Vector2[T] {
	return common.Vector2FromRaylib[T](rl.GetWorldToScreen2D(p.Raylib(), c.Native()))
}

// ScreenToWorld converts a screen position to world coordinates through the
// native camera transform.
//
// Parameters:
//   - p: the screen-space position in pixels
//
// Returns:
//   - common.Vector2[T]: the world-space position
func (c Camera2D[T]) ScreenToWorld(p common.Vector2[T]) common.Vector2[T] {
	return common.Vector2FromRaylib[T](rl.GetScreenToWorld2D(p.Raylib(), c.Native()))
}

// Pan shifts the camera target by a screen-space delta (mouse movement in
// pixels). Moving the mouse right drags the world right, so the target moves
// left; the delta is divided by the zoom so panning speed is screen-constant.
//
// Parameters:
//   - delta: the drag delta in screen pixels
func (c *Camera2D[T]) Pan(delta common.Vector2[T]) {
	inv := T(1.0 / c.Zoom)
	c.Target.X -= delta.X * inv
	c.Target.Y -= delta.Y * inv
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screenPos fixed on screen. The resulting zoom is clamped to [0.1, 5.0].
// The target adjustment assumes zero rotation.
//
// Parameters:
//   - screenPos: the screen position to zoom about, in pixels
//   - factor: the zoom multiplier (>1 zooms in)
func (c *Camera2D[T]) ZoomAt(screenPos common.Vector2[T], factor float32) {
	worldPos := c.ScreenToWorld(screenPos)

	c.Zoom = common.Clamp(c.Zoom*factor, minZoom, maxZoom)

	// Native transform: screen = (world - target)*zoom + offset.
	// Solve for the target that puts worldPos back under screenPos.
	inv := T(1.0 / c.Zoom)
	c.Target.X = worldPos.X - (screenPos.X-c.Offset.X)*inv
	c.Target.Y = worldPos.Y - (screenPos.Y-c.Offset.Y)*inv
}

// BeginMode2D starts 2D drawing with the camera. Must be paired with EndMode2D.
// Requires an initialized native window.
//
// Parameters:
//   - c: the camera to draw with
func BeginMode2D[T common.Float](c Camera2D[T]) {
	rl.BeginMode2D(c.Native())
}

// EndMode2D ends 2D drawing started by BeginMode2D.
func EndMode2D() {
	rl.EndMode2D()
}

// Package camera provides type-safe generic wrappers around the native library's
// 3D and 2D camera structs, plus the Rig type that holds camera mode and control
// bindings for the per-frame native update.
//
// All camera math, input handling and rendering are delegated to the native
// library; this package only converts between the generic representations and
// the native fixed-precision (float32) layouts. Conversions are explicit
// field-by-field copies in both directions; the native layout is never
// reinterpreted in place.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"raycam/common"
)

// Projection selects between perspective and orthographic projection.
// Values are numerically identical to the native library's projection enum.
type Projection int32

const (
	// ProjectionPerspective renders with a perspective projection.
	ProjectionPerspective Projection = 0
	// ProjectionOrthographic renders with an orthographic projection.
	ProjectionOrthographic Projection = 1
)

// Camera3D is a generic 3D camera. The projection tag is set by the Perspective
// and Orthographic factories and never changes across updates; read it with the
// Projection method.
//
// The zero value is not a usable camera; construct one with a factory.
type Camera3D[T common.Float] struct {
	// Position is the camera's world-space position.
	Position common.Vector3[T]
	// Target is the world-space point the camera looks at.
	Target common.Vector3[T]
	// Up is the camera's up vector (rotation over its axis).
	Up common.Vector3[T]
	// Fovy is the field of view aperture in degrees (perspective), or the
	// near-plane width in world units (orthographic).
	Fovy float32

	projection Projection
}

// Camera is an alias for Camera3D, mirroring the native library's own alias.
type Camera[T common.Float] = Camera3D[T]

// Perspective creates a perspective camera.
// fovy is in degrees. No input validation is performed: out-of-range apertures
// and degenerate up vectors pass through to the native library uninterpreted.
//
// Parameters:
//   - position: world-space camera position
//   - target: world-space look-at point
//   - up: camera up vector
//   - fovy: field of view aperture in degrees
//
// Returns:
//   - Camera3D[T]: the constructed camera
func Perspective[T common.Float](position, target, up common.Vector3[T], fovy float32) Camera3D[T] {
	return Camera3D[T]{
		Position:   position,
		Target:     target,
		Up:         up,
		Fovy:       fovy,
		projection: ProjectionPerspective,
	}
}

// Orthographic creates an orthographic camera.
// fovy is the near-plane width in world units. Aside from the projection tag
// the camera is identical to the one Perspective would return.
//
// Parameters:
//   - position: world-space camera position
//   - target: world-space look-at point
//   - up: camera up vector
//   - fovy: near-plane width in world units
//
// Returns:
//   - Camera3D[T]: the constructed camera
func Orthographic[T common.Float](position, target, up common.Vector3[T], fovy float32) Camera3D[T] {
	c := Perspective(position, target, up, fovy)
	c.projection = ProjectionOrthographic
	return c
}

// Projection returns the camera's projection tag.
//
// Returns:
//   - Projection: ProjectionPerspective or ProjectionOrthographic
func (c Camera3D[T]) Projection() Projection {
	return c.projection
}

// Native converts the camera to the native library's fixed-precision struct.
// The conversion is an explicit field-by-field copy: float64 components narrow
// to float32, and the projection tag coerces to the native enum integer.
//
// Returns:
//   - rl.Camera3D: the native camera value
func (c Camera3D[T]) Native() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position.Raylib(),
		Target:     c.Target.Raylib(),
		Up:         c.Up.Raylib(),
		Fovy:       c.Fovy,
		Projection: rl.CameraProjection(c.projection),
	}
}

// Camera3DFromNative converts a native camera struct to the generic
// representation with an explicit field-by-field copy.
//
// Parameters:
//   - n: the native camera value
//
// Returns:
//   - Camera3D[T]: the generic camera
func Camera3DFromNative[T common.Float](n rl.Camera3D) Camera3D[T] {
	return Camera3D[T]{
		Position:   common.Vector3FromRaylib[T](n.Position),
		Target:     common.Vector3FromRaylib[T](n.Target),
		Up:         common.Vector3FromRaylib[T](n.Up),
		Fovy:       n.Fovy,
		projection: Projection(n.Projection),
	}
}

// BeginMode3D starts 3D drawing with the camera. Must be paired with EndMode3D.
// Requires an initialized native window.
//
// Parameters:
//   - c: the camera to draw with
func BeginMode3D[T common.Float](c Camera3D[T]) {
	rl.BeginMode3D(c.Native())
}

// EndMode3D ends 3D drawing started by BeginMode3D.
func EndMode3D() {
	rl.EndMode3D()
}

// WorldToScreen projects a world-space point to screen coordinates using the
// camera. Requires an initialized native window (the projection depends on the
// current screen size).
//
// Parameters:
//   - c: the camera to project with
//   - p: the world-space point
//
// Returns:
//   - common.Vector2[T]: the screen-space position in pixels
func WorldToScreen[T common.Float](c Camera3D[T], p common.Vector3[T]) common.Vector2[T] {
	return common.Vector2FromRaylib[T](rl.GetWorldToScreen(p.Raylib(), c.Native()))
}

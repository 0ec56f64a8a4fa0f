// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Float constrains the numeric component type of the generic vector and camera types.
// Only the float32 instantiation matches the native library's struct layout exactly;
// float64 instantiations convert component-by-component with explicit narrowing.
type Float interface {
	~float32 | ~float64
}

// Vector2 is a generic 2-component vector.
type Vector2[T Float] struct {
	// X is the horizontal component.
	X T
	// Y is the vertical component.
	Y T
}

// Vector3 is a generic 3-component vector.
type Vector3[T Float] struct {
	// X is the horizontal component.
	X T
	// Y is the vertical component.
	Y T
	// Z is the depth component.
	Z T
}

// NewVector2 creates a Vector2 from its components.
//
// Parameters:
//   - x, y: the vector components
//
// Returns:
//   - Vector2[T]: the constructed vector
func NewVector2[T Float](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// NewVector3 creates a Vector3 from its components.
//
// Parameters:
//   - x, y, z: the vector components
//
// Returns:
//   - Vector3[T]: the constructed vector
func NewVector3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Raylib converts the vector to the native library's fixed-precision representation.
// The conversion is an explicit component-by-component copy; float64 components narrow to float32.
//
// Returns:
//   - rl.Vector2: the native vector
func (v Vector2[T]) Raylib() rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// Raylib converts the vector to the native library's fixed-precision representation.
// The conversion is an explicit component-by-component copy; float64 components narrow to float32.
//
// Returns:
//   - rl.Vector3: the native vector
func (v Vector3[T]) Raylib() rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Vector2FromRaylib converts a native vector to the generic representation.
//
// Parameters:
//   - v: the native vector
//
// Returns:
//   - Vector2[T]: the generic vector
func Vector2FromRaylib[T Float](v rl.Vector2) Vector2[T] {
	return Vector2[T]{X: T(v.X), Y: T(v.Y)}
}

// Vector3FromRaylib converts a native vector to the generic representation.
//
// Parameters:
//   - v: the native vector
//
// Returns:
//   - Vector3[T]: the generic vector
func Vector3FromRaylib[T Float](v rl.Vector3) Vector3[T] {
	return Vector3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

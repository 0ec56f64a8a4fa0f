package common

import (
	"github.com/EngoEngine/glm"
)

// GLM converts the vector to the glm representation used by engine math code.
// Components narrow to float32 for float64 instantiations.
//
// Returns:
//   - glm.Vec2: the glm vector
func (v Vector2[T]) GLM() glm.Vec2 {
	return glm.Vec2{float32(v.X), float32(v.Y)}
}

// GLM converts the vector to the glm representation used by engine math code.
// Components narrow to float32 for float64 instantiations.
//
// Returns:
//   - glm.Vec3: the glm vector
func (v Vector3[T]) GLM() glm.Vec3 {
	return glm.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vector2FromGLM converts a glm vector to the generic representation.
//
// Parameters:
//   - v: the glm vector
//
// Returns:
//   - Vector2[T]: the generic vector
func Vector2FromGLM[T Float](v glm.Vec2) Vector2[T] {
	return Vector2[T]{X: T(v[0]), Y: T(v[1])}
}

// Vector3FromGLM converts a glm vector to the generic representation.
//
// Parameters:
//   - v: the glm vector
//
// Returns:
//   - Vector3[T]: the generic vector
func Vector3FromGLM[T Float](v glm.Vec3) Vector3[T] {
	return Vector3[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2])}
}

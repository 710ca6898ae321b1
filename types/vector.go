package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Return a vector with the min components of two vectors.
func MinVec3(v1, v2 Vec3) Vec3 {
	return Vec3{
		float32(math.Min(float64(v1[0]), float64(v2[0]))),
		float32(math.Min(float64(v1[1]), float64(v2[1]))),
		float32(math.Min(float64(v1[2]), float64(v2[2]))),
	}
}

// Return a vector with the max components of two vectors.
func MaxVec3(v1, v2 Vec3) Vec3 {
	return Vec3{
		float32(math.Max(float64(v1[0]), float64(v2[0]))),
		float32(math.Max(float64(v1[1]), float64(v2[1]))),
		float32(math.Max(float64(v1[2]), float64(v2[2]))),
	}
}

package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps num between min and max.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	} else if num > max {
		return max
	}
	return num
}

// Horizontal returns the vector with its vertical (Z) component zeroed.
func Horizontal(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec.X(), vec.Y(), 0}
}

// Vec3HzDistSqr returns the squared horizontal length of a vector.
func Vec3HzDistSqr(vec mgl32.Vec3) float32 {
	return vec.X()*vec.X() + vec.Y()*vec.Y()
}

// Vec3HzDist returns the horizontal length of a vector.
func Vec3HzDist(vec mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec))
}

// SafeNormalize returns the normalized vector, or a zero vector if the vector is too short
// to be normalized.
func SafeNormalize(vec mgl32.Vec3) mgl32.Vec3 {
	lenSqr := vec.LenSqr()
	if lenSqr < SmallNumber {
		return mgl32.Vec3{}
	}
	return vec.Mul(1 / math32.Sqrt(lenSqr))
}

// ForwardVector returns the horizontal facing direction for the given yaw in degrees. A yaw
// of zero faces the positive X axis.
func ForwardVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Cos(yawRad), math32.Sin(yawRad), 0}
}

// RightVector returns the horizontal direction to the right of the given yaw in degrees.
func RightVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{-math32.Sin(yawRad), math32.Cos(yawRad), 0}
}

// WrapYaw wraps a yaw angle into the (-180, 180] range.
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw > 180 {
		yaw -= 360
	} else if yaw <= -180 {
		yaw += 360
	}
	return yaw
}

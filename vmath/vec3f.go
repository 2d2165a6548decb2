package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector, the arithmetic kernel behind vector.Vector
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3FCross returns a × b in a right-handed frame
func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// V3FMag returns the Euclidean norm
// Nested Hypot keeps large components from overflowing the squared sum
func V3FMag(v Vec3F) float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// V3FArray returns the components as an ordered triple
func V3FArray(v Vec3F) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// V3FFromArray builds a Vec3F from an ordered triple
func V3FFromArray(a [3]float64) Vec3F {
	return Vec3F{a[0], a[1], a[2]}
}

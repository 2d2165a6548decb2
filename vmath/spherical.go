package vmath

import (
	"math"
)

// Spherical convention used across the module:
//   r   radius, >= 0 for values produced by CartToSph
//   lat elevation from the XY plane, [-Pi/2, Pi/2]
//   lon azimuth from +X toward +Y, [0, 2Pi)

const TwoPi = 2 * math.Pi

// CartToSph converts cartesian components to (r, lat, lon)
// The origin maps to (0, 0, 0) exactly
func CartToSph(x, y, z float64) (r, lat, lon float64) {
	rho := math.Hypot(x, y)
	r = math.Hypot(rho, z)
	if r == 0 {
		return 0, 0, 0
	}
	// atan2 form of asin(z/r); asin loses ~sqrt(eps) near the poles
	lat = math.Atan2(z, rho)
	lon = NormalizeLon(math.Atan2(y, x))
	return r, lat, lon
}

// SphToCart converts (r, lat, lon) to cartesian components
func SphToCart(r, lat, lon float64) (x, y, z float64) {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	x = r * cosLat * cosLon
	y = r * cosLat * sinLon
	z = r * sinLat
	return x, y, z
}

// NormalizeLon wraps an angle into [0, 2Pi)
func NormalizeLon(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -1e-17 + 2Pi rounds to 2Pi
	if a >= TwoPi || a == 0 {
		return 0
	}
	return a
}

// V3FToSph converts a Vec3F to its spherical triple
func V3FToSph(v Vec3F) [3]float64 {
	r, lat, lon := CartToSph(v.X, v.Y, v.Z)
	return [3]float64{r, lat, lon}
}

// V3FFromSph converts a spherical triple to a Vec3F
func V3FFromSph(s [3]float64) Vec3F {
	x, y, z := SphToCart(s[0], s[1], s[2])
	return Vec3F{x, y, z}
}

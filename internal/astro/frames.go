// Package astro provides the small amount of vector and angle math shared by the
// ephemeris and scene packages.
package astro

import (
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// EclipticLongitude returns the ecliptic longitude of an ecliptic vector
// in radians, normalized to [0, 2π).
func EclipticLongitude(v Vec3) float64 {
	return NormalizeRadians(math.Atan2(v.Y, v.X))
}

// NormalizeRadians maps an angle into [0, 2π).
func NormalizeRadians(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

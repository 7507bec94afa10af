package geo

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// EarthRadiusM is the WGS-84 equatorial radius in meters. The package
// treats the earth as a sphere of this radius; no ellipsoidal or
// altitude correction is applied.
const EarthRadiusM = 6378137.0

var (
	ErrNegativeDistance = errors.New("geo: distance must not be negative")
	ErrPoleLatitude     = errors.New("geo: longitude scale undefined at the poles")
)

// Displace returns the coordinate reached by moving dxM meters east and
// dyM meters north from (lonDeg, latDeg).
//
// Longitude is scaled by the cosine of the original latitude, not the
// updated one. Accurate for small steps; error accumulates at high
// latitude or over long distances. Results are not wrapped or clamped
// past +/-90 / +/-180.
func Displace(lonDeg, latDeg, dxM, dyM float64) (newLon, newLat float64, err error) {
	c := math.Cos(latDeg * math.Pi / 180.0)
	if math.Abs(c) < 1e-15 {
		return 0, 0, fmt.Errorf("%w: latitude %v", ErrPoleLatitude, latDeg)
	}

	newLat = latDeg + (dyM/EarthRadiusM)*180.0/math.Pi
	newLon = lonDeg + (dxM/(EarthRadiusM*c))*180.0/math.Pi
	return newLon, newLat, nil
}

// RandomDisplacement decomposes a scalar distance in meters into an
// east/north pair of the same magnitude along a uniformly random
// bearing. A distance of zero yields (0, 0).
func RandomDisplacement(distanceM float64) (dx, dy float64, err error) {
	if distanceM < 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrNegativeDistance, distanceM)
	}

	angle := rand.Float64() * 2 * math.Pi
	dx = distanceM * math.Cos(angle)
	dy = distanceM * math.Sin(angle)
	return dx, dy, nil
}

// Package coord computes distances, bearings, and projected positions
// between points on the Earth's surface, and converts between
// geographic (latitude/longitude), Earth-centered Cartesian, and UTM
// grid coordinates.
//
// Two Earth models are provided. Sphere approximates the Earth as a
// fixed-radius sphere and offers cheap great-circle operations.
// Ellipsoid performs high-precision geodesic computations (Vincenty's
// formulas) and UTM projection on a reference ellipsoid. The WGS84 and
// Globe package variables are pre-initialized models for Earth.
//
// All operations are pure functions over value types and are safe for
// concurrent use.
package coord

import (
	"errors"
	"math"
)

// WGS84 conforming ellipsoid.
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = Ellipsoid{A: 6378137.0, InvF: 298.257223563}

// Globe is a pre-initialized sphere representing Earth as a
// terrestrial globe, using the mean Earth radius.
var Globe = Sphere{Radius: 6366707.01896486}

// Errors reported by the iterative and UTM operations. All of them are
// recoverable by the caller; none leave any state behind.
var (
	// ErrNoConvergence is returned when a fixed-point iteration
	// (Vincenty direct/inverse, ellipsoidal Cartesian inverse) fails to
	// meet its tolerance within the iteration bound. Near-antipodal
	// point pairs are the usual trigger.
	ErrNoConvergence = errors.New("coord: iteration did not converge")

	// ErrInvalidZoneLetter is returned by FromUTM for a zone letter
	// outside the UTM band table.
	ErrInvalidZoneLetter = errors.New("coord: invalid UTM zone letter")

	// ErrLatitudeRange is returned for latitudes outside [-90, 90].
	ErrLatitudeRange = errors.New("coord: latitude out of range")
)

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi

	// Convergence tolerance for the fixed-point iterations, in radians.
	epsilon = 5e-14

	// Bound on fixed-point iterations. Well-conditioned inputs converge
	// in single-digit counts; hitting the bound means ErrNoConvergence.
	maxIterations = 100
)

// Point is a geographic position in degrees. Lat is positive north,
// Lon positive east. Operations that produce a Point always normalize
// Lon into (-180, 180]; Lat is never implicitly normalized and must be
// supplied in [-90, 90].
type Point struct {
	Lat float64
	Lon float64
}

// NewPoint returns a Point with the longitude normalized to
// (-180, 180]. The latitude is stored as given.
func NewPoint(lat, lon float64) Point {
	return Point{Lat: lat, Lon: wrapLon(lon)}
}

// Ellipsoid describes a reference ellipsoid by its semi-major axis A
// (meters) and inverse flattening InvF. The zero value is not useful;
// use WGS84 or construct both fields explicitly.
//
// Flattening and eccentricity are derived on demand so the two stored
// parameters can never drift apart.
type Ellipsoid struct {
	A    float64
	InvF float64
}

// F returns the flattening of the ellipsoid.
func (e Ellipsoid) F() float64 {
	return 1 / e.InvF
}

// E2 returns the first eccentricity squared, 2f - f².
func (e Ellipsoid) E2() float64 {
	f := e.F()
	return 2*f - f*f
}

// B returns the semi-minor axis in meters.
func (e Ellipsoid) B() float64 {
	return e.A * (1 - e.F())
}

// Sphere is a fixed-radius spherical Earth model. Its operations are
// cheaper but less accurate than the Ellipsoid equivalents.
//
// Unlike the Ellipsoid operations, the Sphere operations do not
// validate their inputs: latitudes are assumed to be in [-90, 90], and
// the result for anything else is meaningless. Use the Ellipsoid path
// when inputs need rejecting.
type Sphere struct {
	Radius float64
}

// wrapLon normalizes a longitude in degrees into (-180, 180].
func wrapLon(lon float64) float64 {
	if lon > -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon, 360)
	if lon <= -180 {
		lon += 360
	} else if lon > 180 {
		lon -= 360
	}
	return lon
}

// wrap360 normalizes an azimuth in degrees into [0, 360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// clamp1 pins x into [-1, 1] so rounding noise cannot push an
// asin/acos argument out of domain.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func checkLat(p Point) error {
	if p.Lat < -90 || p.Lat > 90 || math.IsNaN(p.Lat) {
		return ErrLatitudeRange
	}
	return nil
}

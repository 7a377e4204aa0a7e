package coord

import "math"

// Vector is a 3D Cartesian vector in meters.
type Vector struct {
	X, Y, Z float64
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the magnitude of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return Vector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// ECEF is an Earth-centered, Earth-fixed position on the reference
// ellipsoid. It is a distinct type from SphereXYZ because the two
// frames are not interchangeable: an ECEF vector produced by
// Ellipsoid.ECEFOf must not be fed to the Sphere conversions and vice
// versa.
type ECEF struct {
	Vector
}

// SphereXYZ is a Cartesian position on the fixed-radius sphere model.
// See ECEF for why the two frames are separate types.
type SphereXYZ struct {
	Vector
}

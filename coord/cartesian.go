package coord

import "math"

// ECEFOf converts p to Earth-centered, Earth-fixed Cartesian
// coordinates on the ellipsoid surface.
func (e Ellipsoid) ECEFOf(p Point) ECEF {
	ecc2 := e.E2()
	sinLat, cosLat := math.Sincos(p.Lat * radians)
	r := e.A / math.Sqrt(1-ecc2*sinLat*sinLat)

	sinLon, cosLon := math.Sincos(p.Lon * radians)
	return ECEF{Vector{
		X: r * cosLon * cosLat,
		Y: r * sinLon * cosLat,
		Z: r * (1 - ecc2) * sinLat,
	}}
}

// PointOf converts an ECEF position on the ellipsoid surface back to a
// geographic point. The latitude is recovered by a fixed-point
// iteration; ErrNoConvergence is returned if it does not settle within
// the iteration bound.
func (e Ellipsoid) PointOf(c ECEF) (Point, error) {
	ecc2 := e.E2()
	r := e.A * ecc2
	p := math.Sqrt(c.X*c.X + c.Y*c.Y)

	tmp := c.Z / (p * (1 - ecc2))
	for i := 0; ; i++ {
		if i == maxIterations {
			return Point{}, ErrNoConvergence
		}
		last := tmp
		tmp = c.Z / (p - r/math.Sqrt(1+(1-ecc2)*tmp*tmp))
		if math.Abs(last-tmp) <= epsilon {
			break
		}
	}
	return Point{
		Lat: math.Atan(tmp) * degrees,
		Lon: math.Atan2(c.Y, c.X) * degrees,
	}, nil
}

// CartesianOf converts p to Cartesian coordinates on the fixed-radius
// sphere.
func (s Sphere) CartesianOf(p Point) SphereXYZ {
	sinLat, cosLat := math.Sincos(p.Lat * radians)
	sinLon, cosLon := math.Sincos(p.Lon * radians)
	return SphereXYZ{Vector{
		X: s.Radius * cosLon * cosLat,
		Y: s.Radius * sinLon * cosLat,
		Z: s.Radius * sinLat,
	}}
}

// PointOf converts a Cartesian position on the fixed-radius sphere
// back to a geographic point.
func (s Sphere) PointOf(c SphereXYZ) Point {
	return Point{
		Lat: math.Atan2(c.Z, math.Sqrt(c.X*c.X+c.Y*c.Y)) * degrees,
		Lon: math.Atan2(c.Y, c.X) * degrees,
	}
}

// Cross returns the un-normalized cross product of the spherical
// Cartesian positions of p1 and p2. It is written in terms of
// half-angle sums and differences, which conditions the result far
// better than the naive component product when the two points are
// close together.
func (s Sphere) Cross(p1, p2 Point) SphereXYZ {
	lat1 := p1.Lat * radians
	lon1 := p1.Lon * radians
	lat2 := p2.Lat * radians
	lon2 := p2.Lon * radians

	dlat := lat1 - lat2
	slat := lat1 + lat2
	dlon := (lon1 - lon2) / 2
	mlon := (lon1 + lon2) / 2

	return SphereXYZ{Vector{
		X: math.Sin(slat)*math.Cos(mlon)*math.Sin(dlon) -
			math.Sin(dlat)*math.Sin(mlon)*math.Cos(dlon),
		Y: math.Sin(dlat)*math.Cos(mlon)*math.Cos(dlon) +
			math.Sin(slat)*math.Sin(mlon)*math.Sin(dlon),
		Z: math.Cos(lat1) * math.Cos(lat2) * math.Sin(-2*dlon),
	}}
}

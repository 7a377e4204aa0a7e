package coord

import "math"

// Distance returns the great-circle distance between p1 and p2 in
// meters, using the spherical law of cosines. Latitudes outside
// [-90, 90] are not rejected; see Sphere.
func (s Sphere) Distance(p1, p2 Point) float64 {
	dlon := (p1.Lon - p2.Lon) * radians
	lat1 := p1.Lat * radians
	lat2 := p2.Lat * radians
	dlat := lat1 - lat2

	angle := math.Acos(clamp1(math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(dlon)))
	dist := s.Radius * angle

	// Acos loses all precision as the angle approaches zero, so for
	// small distances fall back to a flat-Earth linear approximation.
	if dist < 0.01 {
		dlon *= math.Cos(lat2)
		dist = s.Radius * math.Sqrt(dlat*dlat+dlon*dlon)
	}
	return dist
}

// Project returns the point reached by traveling the given distance in
// meters from origin along a great circle at the given azimuth
// (degrees clockwise from north). The result longitude is normalized
// to (-180, 180]. Latitudes outside [-90, 90] are not rejected; see
// Sphere.
func (s Sphere) Project(origin Point, azimuthDeg, meters float64) Point {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	θ := azimuthDeg * radians
	φ1 := origin.Lat * radians
	λ1 := origin.Lon * radians
	δ := meters / s.Radius

	φ2 := math.Asin(clamp1(math.Sin(φ1)*math.Cos(δ) +
		math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	return Point{Lat: φ2 * degrees, Lon: wrapLon(λ2 * degrees)}
}

// DistanceToArc returns the perpendicular great-circle distance in
// meters from p to the great circle through p1 and p2. The result is
// positive when p projects onto the segment between p1 and p2 (per
// IsBetween) and negative otherwise, flagging points that are not
// actually between the reference points.
func (s Sphere) DistanceToArc(p, p1, p2 Point) float64 {
	sign := 1.0
	if !IsBetween(p, p1, p2) {
		sign = -1.0
	}
	pv := s.CartesianOf(p).Normalized()
	n := s.Cross(p1, p2).Normalized()
	return sign * math.Abs(s.Radius*(math.Pi/2-math.Acos(clamp1(n.Dot(pv)))))
}

// IsBetween reports whether p's projection onto the chord from p1 to
// p2 falls within the segment. It parametrizes the chord linearly with
// longitudes scaled by cos(latitude), returning true iff the
// parameter is in [0, 1).
//
// This is a local planar approximation, not a geodesic test; it
// degrades near the poles and across the antimeridian.
func IsBetween(p, p1, p2 Point) bool {
	cosLat := math.Cos(p.Lat * radians)
	u := (p.Lon-p1.Lon)*(p2.Lon-p1.Lon)*cosLat*cosLat +
		(p.Lat-p1.Lat)*(p2.Lat-p1.Lat)
	u /= (p2.Lon-p1.Lon)*(p2.Lon-p1.Lon)*cosLat*cosLat +
		(p2.Lat-p1.Lat)*(p2.Lat-p1.Lat)
	return u >= 0 && u < 1
}

package coord

import "math"

// Inverse solves the inverse geodesic problem on the ellipsoid: the
// distance in meters between p1 and p2 along the geodesic, the forward
// azimuth at p1, and the reverse azimuth at p2, using Vincenty's
// formulas. Azimuths are degrees clockwise from north in [0, 360).
//
// Identical points return (0, 0, 0) without iterating. Near-antipodal
// pairs may fail to converge, in which case ErrNoConvergence is
// returned.
func (e Ellipsoid) Inverse(p1, p2 Point) (meters, fwdAzDeg, revAzDeg float64, err error) {
	if err := checkLat(p1); err != nil {
		return 0, 0, 0, err
	}
	if err := checkLat(p2); err != nil {
		return 0, 0, 0, err
	}
	if p1.Lat == p2.Lat && p1.Lon == p2.Lon {
		return 0, 0, 0, nil
	}

	f := e.F()
	r := 1 - f
	a0 := e.A
	b0 := a0 * r

	u1 := math.Atan(r * math.Tan(p1.Lat*radians))
	sinu1, cosu1 := math.Sincos(u1)
	u2 := math.Atan(r * math.Tan(p2.Lat*radians))
	sinu2, cosu2 := math.Sincos(u2)

	omega := wrapLon(p2.Lon-p1.Lon) * radians
	lambda := omega

	var sinSigma, cosSigma, sigma, cosAlpha2, c2sm float64
	for i := 0; ; i++ {
		if i == maxIterations {
			return 0, 0, 0, ErrNoConvergence
		}
		sinLambda, cosLambda := math.Sincos(lambda)
		t1 := cosu2 * sinLambda
		t2 := cosu1*sinu2 - sinu1*cosu2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		cosSigma = sinu1*sinu2 + cosu1*cosu2*cosLambda
		if sinSigma == 0 {
			// Coincident after longitude wrapping.
			return 0, 0, 0, nil
		}
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := clamp1(cosu1 * cosu2 * sinLambda / sinSigma)
		cosAlpha2 = 1 - sinAlpha*sinAlpha
		if cosAlpha2 == 0 {
			// Equatorial geodesic, cos(2σm) is indeterminate.
			c2sm = 0
		} else {
			c2sm = cosSigma - 2*sinu1*sinu2/cosAlpha2
		}
		c := f / 16 * cosAlpha2 * (4 + f*(4-3*cosAlpha2))
		last := lambda
		lambda = omega + (1-c)*f*sinAlpha*
			(sigma+c*sinSigma*(c2sm+c*cosSigma*(-1+2*c2sm*c2sm)))
		if math.IsNaN(lambda) {
			return 0, 0, 0, ErrNoConvergence
		}
		if math.Abs(lambda-last) <= epsilon {
			break
		}
	}

	u2sq := cosAlpha2 * (a0*a0 - b0*b0) / (b0 * b0)
	bigA := 1 + u2sq/16384*(4096+u2sq*(-768+u2sq*(320-175*u2sq)))
	bigB := u2sq / 1024 * (256 + u2sq*(-128+u2sq*(74-47*u2sq)))
	deltaSigma := bigB * sinSigma *
		(c2sm + bigB/4*(cosSigma*(-1+2*c2sm*c2sm)-
			bigB/6*c2sm*(-3+4*sinSigma*sinSigma)*(-3+4*c2sm*c2sm)))
	meters = b0 * bigA * (sigma - deltaSigma)

	sinLambda, cosLambda := math.Sincos(lambda)
	fwdAzDeg = wrap360(math.Atan2(cosu2*sinLambda,
		cosu1*sinu2-sinu1*cosu2*cosLambda) * degrees)
	revAzDeg = wrap360(math.Atan2(cosu1*sinLambda,
		-sinu1*cosu2+cosu1*sinu2*cosLambda)*degrees + 180)
	return meters, fwdAzDeg, revAzDeg, nil
}

// Distance returns the geodesic distance between p1 and p2 in meters.
// It is shorthand for Inverse discarding the azimuths.
func (e Ellipsoid) Distance(p1, p2 Point) (float64, error) {
	meters, _, _, err := e.Inverse(p1, p2)
	return meters, err
}

// Direct solves the direct geodesic problem on the ellipsoid: the
// point reached by traveling the given distance in meters from origin
// at the given azimuth (degrees clockwise from north), using
// Vincenty's formulas. The result longitude is normalized to
// (-180, 180].
func (e Ellipsoid) Direct(origin Point, azimuthDeg, meters float64) (Point, error) {
	if err := checkLat(origin); err != nil {
		return Point{}, err
	}

	az := azimuthDeg * radians
	sinAz, cosAz := math.Sincos(az)

	f := e.F()
	r := 1 - f
	a0 := e.A
	b0 := a0 * r

	tanu1 := r * math.Tan(origin.Lat*radians)
	u1 := math.Atan(tanu1)
	sinu1, cosu1 := math.Sincos(u1)
	sigma1 := math.Atan2(tanu1, cosAz)

	sinAlpha := cosu1 * sinAz
	cosAlpha2 := 1 - sinAlpha*sinAlpha

	u2sq := cosAlpha2 * (a0*a0 - b0*b0) / (b0 * b0)
	bigA := 1 + u2sq/16384*(4096+u2sq*(-768+u2sq*(320-175*u2sq)))
	bigB := u2sq / 1024 * (256 + u2sq*(-128+u2sq*(74-47*u2sq)))

	sigma := meters / (b0 * bigA)
	var sinSigma, cosSigma, c2sm float64
	for i := 0; ; i++ {
		if i == maxIterations {
			return Point{}, ErrNoConvergence
		}
		sinSigma, cosSigma = math.Sincos(sigma)
		c2sm = math.Cos(2*sigma1 + sigma)
		deltaSigma := bigB * sinSigma *
			(c2sm + bigB/4*(cosSigma*(-1+2*c2sm*c2sm)-
				bigB/6*c2sm*(-3+4*sinSigma*sinSigma)*(-3+4*c2sm*c2sm)))
		last := sigma
		sigma = meters/(b0*bigA) + deltaSigma
		if math.Abs(sigma-last) <= epsilon {
			break
		}
	}

	sinSigma, cosSigma = math.Sincos(sigma)
	c2sm = math.Cos(2*sigma1 + sigma)

	t1 := sinu1*cosSigma + cosu1*sinSigma*cosAz
	t4 := sinu1*sinSigma - cosu1*cosSigma*cosAz
	lat2 := math.Atan2(t1, r*math.Sqrt(sinAlpha*sinAlpha+t4*t4))

	lambda := math.Atan2(sinSigma*sinAz, cosu1*cosSigma-sinu1*sinSigma*cosAz)
	c := f / 16 * cosAlpha2 * (4 + f*(4-3*cosAlpha2))
	omega := lambda - (1-c)*f*sinAlpha*
		(sigma+c*sinSigma*(c2sm+c*cosSigma*(-1+2*c2sm*c2sm)))

	return Point{
		Lat: lat2 * degrees,
		Lon: wrapLon(origin.Lon + omega*degrees),
	}, nil
}

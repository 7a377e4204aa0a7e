package coord

import (
	"math"
	"strings"
)

// UTM is a Universal Transverse Mercator grid coordinate. Zone is the
// longitudinal zone number in [1, 60], Letter the latitude band letter
// from ZoneLetters, and Easting/Northing are meters. Northing includes
// the 10,000,000 m false offset in the southern hemisphere bands so it
// stays non-negative.
type UTM struct {
	Zone     int
	Letter   byte
	Easting  float64
	Northing float64
}

// ZoneLetters is the UTM latitude band table, 8-degree bands from
// -80 to 84 (I and O are skipped).
const ZoneLetters = "CDEFGHJKLMNPQRSTUVWX"

const (
	utmScale         = 0.9996
	utmFalseEasting  = 5e5
	utmFalseNorthing = 1e7
)

// ZoneOf returns the UTM zone number for p. Beyond the base 6-degree
// formula it reproduces the two standard exceptions: the widened zone
// 32 over southwestern Norway, and zones 31/33/35/37 over Svalbard.
func ZoneOf(p Point) int {
	zone := int(math.Floor((p.Lon+180)/6))%60 + 1

	if p.Lat > 56 && p.Lat <= 64 && p.Lon > 3 && p.Lon <= 12 {
		zone = 32
	}
	if p.Lat > 72 && p.Lat < 84 {
		switch {
		case p.Lon >= 0 && p.Lon < 9:
			zone = 31
		case p.Lon >= 9 && p.Lon < 21:
			zone = 33
		case p.Lon >= 21 && p.Lon < 33:
			zone = 35
		case p.Lon >= 33 && p.Lon < 42:
			zone = 37
		}
	}
	return zone
}

// ZoneLetterOf returns the UTM latitude band letter for p. Latitudes
// from 72 through 84 map to the widened final band 'X'; latitudes
// outside [-80, 84] return the sentinel 'Z'.
func ZoneLetterOf(p Point) byte {
	if p.Lat >= 72 && p.Lat <= 84 {
		return 'X'
	}
	i := int(math.Floor((p.Lat + 80) / 8))
	if i >= 0 && i < len(ZoneLetters) {
		return ZoneLetters[i]
	}
	return 'Z'
}

// ToUTM converts p to UTM grid coordinates on the ellipsoid using the
// Transverse Mercator series at the zone's central meridian. Easting
// and northing are rounded to the nearest meter.
func (e Ellipsoid) ToUTM(p Point) (UTM, error) {
	if err := checkLat(p); err != nil {
		return UTM{}, err
	}
	zone := ZoneOf(p)

	a := e.A
	ecc2 := e.E2()
	ecc12 := ecc2 / (1 - ecc2)

	lat := p.Lat * radians
	lon0 := float64(zone-1)*6 - 180 + 3

	sinLat, cosLat := math.Sincos(lat)
	tanLat := math.Tan(lat)

	n := a / math.Sqrt(1-ecc2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ecc12 * cosLat * cosLat
	// Offset from the central meridian as a wrapped difference, so the
	// date line (±180°, which share a meridian) projects correctly.
	aa := cosLat * wrapLon(p.Lon-lon0) * radians

	// Meridional arc length from the equator.
	m := a * ((1-ecc2/4-3*ecc2*ecc2/64-5*ecc2*ecc2*ecc2/256)*lat -
		(3*ecc2/8+3*ecc2*ecc2/32+45*ecc2*ecc2*ecc2/1024)*math.Sin(2*lat) +
		(15*ecc2*ecc2/256+45*ecc2*ecc2*ecc2/1024)*math.Sin(4*lat) -
		(35*ecc2*ecc2*ecc2/3072)*math.Sin(6*lat))

	easting := utmScale*n*(aa+(1-t+c)*aa*aa*aa/6+
		(5-18*t+t*t+72*c-58*ecc12)*aa*aa*aa*aa*aa/120) +
		utmFalseEasting
	northing := utmScale * (m + n*tanLat*
		(aa*aa/2+(5-t+9*c+4*c*c)*aa*aa*aa*aa/24+
			(61-58*t+t*t+600*c-330*ecc12)*aa*aa*aa*aa*aa*aa/720))
	if p.Lat < 0 {
		northing += utmFalseNorthing
	}

	return UTM{
		Zone:     zone,
		Letter:   ZoneLetterOf(p),
		Easting:  math.Floor(easting + 0.5),
		Northing: math.Floor(northing + 0.5),
	}, nil
}

// FromUTM converts a UTM grid coordinate back to a geographic point
// via the footprint-latitude series. It returns ErrInvalidZoneLetter
// when the band letter is not in ZoneLetters.
func (e Ellipsoid) FromUTM(u UTM) (Point, error) {
	letter := u.Letter
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if strings.IndexByte(ZoneLetters, letter) < 0 {
		return Point{}, ErrInvalidZoneLetter
	}

	a := e.A
	ecc2 := e.E2()
	ecc12 := ecc2 / (1 - ecc2)
	e1 := (1 - math.Sqrt(1-ecc2)) / (1 + math.Sqrt(1-ecc2))

	x := u.Easting - utmFalseEasting
	y := u.Northing
	if letter < 'N' {
		y -= utmFalseNorthing
	}
	lon0 := (float64(u.Zone-1)*6 - 180 + 3) * radians

	m := y / utmScale
	mu := m / (a * (1 - ecc2/4 - 3*ecc2*ecc2/64 - 5*ecc2*ecc2*ecc2/256))

	// Footprint latitude.
	phi1 := mu + (3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	sinPhi1, cosPhi1 := math.Sincos(phi1)
	tanPhi1 := math.Tan(phi1)

	n1 := a / math.Sqrt(1-ecc2*sinPhi1*sinPhi1)
	t1 := tanPhi1 * tanPhi1
	c1 := ecc12 * cosPhi1 * cosPhi1
	r1 := a * (1 - ecc2) / math.Pow(1-ecc2*sinPhi1*sinPhi1, 1.5)
	d := x / (n1 * utmScale)

	lat := phi1 - (n1*tanPhi1/r1)*
		(d*d/2-(5+3*t1+10*c1-4*c1*c1-9*ecc12)*d*d*d*d/24+
			(61+90*t1+298*c1+45*t1*t1-252*ecc12-3*c1*c1)*d*d*d*d*d*d/720)
	lon := (d - (1+2*t1+c1)*d*d*d/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ecc12+24*t1*t1)*d*d*d*d*d/120) / cosPhi1

	return Point{
		Lat: lat * degrees,
		Lon: wrapLon((lon0 + lon) * degrees),
	}, nil
}

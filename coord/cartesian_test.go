package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorOps(t *testing.T) {
	v := Vector{1, 2, 2}
	w := Vector{0, 1, 0}

	assert.Equal(t, 3.0, v.Norm())
	assert.Equal(t, 2.0, v.Dot(w))
	assert.Equal(t, Vector{-2, 0, 1}, v.Cross(w))

	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Norm(), 1e-15)
	assert.Equal(t, Vector{}, Vector{}.Normalized())
}

func TestECEFKnown(t *testing.T) {
	c := WGS84.ECEFOf(Point{0, 0})
	assert.InDelta(t, WGS84.A, c.X, 1e-6)
	assert.InDelta(t, 0, c.Y, 1e-6)
	assert.InDelta(t, 0, c.Z, 1e-6)

	c = WGS84.ECEFOf(Point{0, 90})
	assert.InDelta(t, 0, c.X, 1e-6)
	assert.InDelta(t, WGS84.A, c.Y, 1e-6)

	// At the pole Z is the semi-minor axis.
	c = WGS84.ECEFOf(Point{90, 0})
	assert.InDelta(t, WGS84.B(), c.Z, 1e-6)
}

func TestECEFRoundTrip(t *testing.T) {
	for lat := -88.0; lat <= 88; lat += 4.3 {
		for lon := -179.0; lon < 180; lon += 13.7 {
			p := Point{lat, lon}
			back, err := WGS84.PointOf(WGS84.ECEFOf(p))
			require.NoErrorf(t, err, "point %+v", p)
			assert.InDeltaf(t, p.Lat, back.Lat, 1e-9, "point %+v", p)
			assert.InDeltaf(t, p.Lon, back.Lon, 1e-9, "point %+v", p)
		}
	}
}

func TestSphereCartesianRoundTrip(t *testing.T) {
	for lat := -89.0; lat <= 89; lat += 7.9 {
		for lon := -179.0; lon < 180; lon += 17.3 {
			p := Point{lat, lon}
			back := Globe.PointOf(Globe.CartesianOf(p))
			assert.InDeltaf(t, p.Lat, back.Lat, 1e-12, "point %+v", p)
			assert.InDeltaf(t, p.Lon, back.Lon, 1e-12, "point %+v", p)
		}
	}
}

func TestSphereCartesianMagnitude(t *testing.T) {
	for _, p := range []Point{{0, 0}, {45, 120}, {-67, -11}} {
		assert.InDelta(t, Globe.Radius, Globe.CartesianOf(p).Norm(), 1e-6)
	}
}

func TestSphereCrossMatchesComponentCross(t *testing.T) {
	// The half-angle form equals the naive cross product of the two
	// unit position vectors.
	pairs := [][2]Point{
		{{0, 0}, {0, 90}},
		{{10, 20}, {-30, 140}},
		{{45, -179}, {44, 179}},
		{{-60, 5}, {-60.001, 5.001}},
	}
	for _, pair := range pairs {
		got := Globe.Cross(pair[0], pair[1])
		v1 := Globe.CartesianOf(pair[0]).Normalized()
		v2 := Globe.CartesianOf(pair[1]).Normalized()
		want := v1.Cross(v2)
		assert.InDeltaf(t, want.X, got.X, 1e-12, "pair %+v", pair)
		assert.InDeltaf(t, want.Y, got.Y, 1e-12, "pair %+v", pair)
		assert.InDeltaf(t, want.Z, got.Z, 1e-12, "pair %+v", pair)
	}
}

func TestEllipsoidDerived(t *testing.T) {
	f := WGS84.F()
	assert.InDelta(t, 1/298.257223563, f, 1e-15)
	assert.InDelta(t, 2*f-f*f, WGS84.E2(), 1e-18)
	assert.InDelta(t, 6356752.3142, WGS84.B(), 1e-4)
	assert.Less(t, math.Abs(WGS84.E2()-0.00669437999), 1e-9)
}

package coord

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphericalDistanceKnown(t *testing.T) {
	// One degree of arc along the equator on the sphere model.
	d := Globe.Distance(Point{0, 0}, Point{0, 1})
	assert.InDelta(t, Globe.Radius*radians, d, 1e-6)
	assert.InDelta(t, 111120, d, 0.5)
}

func TestSphericalDistanceIdentity(t *testing.T) {
	pts := []Point{{0, 0}, {45, 45}, {-33.5, 151.2}, {89, -179}}
	for _, p := range pts {
		assert.Zero(t, Globe.Distance(p, p))
	}
}

func TestSphericalDistanceSmall(t *testing.T) {
	// Distances below a centimeter fall back to the linear
	// approximation instead of losing everything in acos.
	p1 := Point{0, 9}
	p2 := Point{0, 9 + 5e-8}
	d := Globe.Distance(p1, p2)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 0.01)
	want := Globe.Radius * 5e-8 * radians
	assert.InDelta(t, want, d, 1e-6)
}

func TestSphericalDistanceSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10_000; i++ {
		p1 := Point{rng.Float64()*180 - 90, rng.Float64()*360 - 180}
		p2 := Point{rng.Float64()*180 - 90, rng.Float64()*360 - 180}
		assert.InDelta(t, Globe.Distance(p1, p2), Globe.Distance(p2, p1), 1e-7)
	}
}

func TestSphericalProjectRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10_000; i++ {
		origin := Point{rng.Float64()*160 - 80, rng.Float64()*360 - 180}
		az := rng.Float64() * 360
		meters := 1 + rng.Float64()*5e6
		dest := Globe.Project(origin, az, meters)
		assert.InDelta(t, meters, Globe.Distance(origin, dest), 0.01)
	}
}

func TestSphericalProjectAntimeridian(t *testing.T) {
	// Heading east from 179°E far enough to cross the date line must
	// wrap into (-180, 180].
	dest := Globe.Project(Point{0, 179}, 90, 300_000)
	assert.Greater(t, dest.Lon, -180.0)
	assert.LessOrEqual(t, dest.Lon, 180.0)
	assert.Less(t, dest.Lon, 0.0)
	assert.InDelta(t, 0, dest.Lat, 1e-9)
}

func TestIsBetween(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{0, 10}
	assert.True(t, IsBetween(Point{1, 5}, p1, p2))
	assert.True(t, IsBetween(Point{0, 0}, p1, p2))
	assert.False(t, IsBetween(Point{0, 10}, p1, p2))
	assert.False(t, IsBetween(Point{1, 15}, p1, p2))
	assert.False(t, IsBetween(Point{1, -5}, p1, p2))
}

func TestDistanceToArc(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{0, 10}

	// 1°N above the equator arc, between the endpoints.
	d := Globe.DistanceToArc(Point{1, 5}, p1, p2)
	assert.InDelta(t, Globe.Radius*radians, d, 1.0)

	// Same offset but beyond p2, flagged negative.
	d = Globe.DistanceToArc(Point{1, 15}, p1, p2)
	assert.Less(t, d, 0.0)
	assert.InDelta(t, Globe.Radius*radians, -d, 1.0)

	// On the arc itself.
	d = Globe.DistanceToArc(Point{0, 5}, p1, p2)
	assert.InDelta(t, 0, d, 1e-6)
}

package comps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles(t *testing.T) {
	t.Parallel()

	// Same point.
	assert.Equal(t, 0.0, DistanceMiles(26.1224, -80.1373, 26.1224, -80.1373))

	// One degree of latitude is about 69 miles.
	d := DistanceMiles(26.0, -80.0, 27.0, -80.0)
	assert.InDelta(t, 69.1, d, 0.5)

	// Fort Lauderdale beach to downtown, roughly two miles.
	d = DistanceMiles(26.1224, -80.1373, 26.1201, -80.1041)
	assert.InDelta(t, 2.06, d, 0.15)
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	t.Parallel()

	a := DistanceMiles(26.1, -80.1, 25.8, -80.2)
	b := DistanceMiles(25.8, -80.2, 26.1, -80.1)
	assert.InDelta(t, a, b, 1e-9)
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	t.Parallel()

	lat, lon := 26.1224, -80.1373
	minLat, maxLat, minLon, maxLon := BoundingBox(lat, lon, 5)

	assert.Less(t, minLat, lat)
	assert.Greater(t, maxLat, lat)
	assert.Less(t, minLon, lon)
	assert.Greater(t, maxLon, lon)

	// Points on the circle at due north/south/east/west stay inside.
	assert.GreaterOrEqual(t, maxLat-lat, 5.0/69.0-1e-9)
	assert.GreaterOrEqual(t, maxLon-lon, 5.0/69.0-1e-9, "longitude span widens with latitude")
}

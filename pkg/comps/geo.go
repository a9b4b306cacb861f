package comps

import "math"

const earthRadiusMiles = 3958.8

// DistanceMiles returns the great-circle distance between two
// coordinates using the haversine formula.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox returns the lat/lng box that contains a circle of the
// given radius around a point. Longitude span widens with latitude;
// near the poles the box degenerates to the full longitude range.
func BoundingBox(lat, lon, radiusMiles float64) (minLat, maxLat, minLon, maxLon float64) {
	latDelta := radiusMiles / 69.0

	cosLat := math.Cos(lat * math.Pi / 180)
	var lonDelta float64
	if cosLat < 1e-6 {
		lonDelta = 180
	} else {
		lonDelta = radiusMiles / (69.0 * cosLat)
	}

	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}

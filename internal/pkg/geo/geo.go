package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000

// Distance returns the Haversine great-circle distance between two
// coordinates in meters.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Verdict is the result of a geofence evaluation.
type Verdict struct {
	DistanceMeters float64
	WithinRadius   bool
}

// Evaluate computes the distance from a reported coordinate to the office and
// whether it falls inside the allowed radius. The reported coordinate is
// untrusted client input; this is the authoritative check.
func Evaluate(lat, lon, officeLat, officeLon float64, radiusMeters int) Verdict {
	distance := Distance(lat, lon, officeLat, officeLon)
	return Verdict{
		DistanceMeters: distance,
		WithinRadius:   distance <= float64(radiusMeters),
	}
}

package domain

import "math"

const earthRadiusKm = 6371.0

// MaxGridDiagonalKm is the largest grid-section box the API will serve.
const MaxGridDiagonalKm = 4.0

// DistanceKm is the great-circle distance between a and b.
func DistanceKm(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	lat1 := a.Lat * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DiagonalKm is the distance between the box's corners.
func (b BoundingBox) DiagonalKm() float64 {
	return DistanceKm(b.SouthWest, b.NorthEast)
}

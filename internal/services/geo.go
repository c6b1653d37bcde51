package services

import (
	"math"

	"steel-auction-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the
// haversine formula on a spherical Earth.
//
// Both points must already be validated; out-of-range input yields
// meaningless results rather than an error.
func DistanceKm(a, b domain.Point) float64 {
	lat1 := degToRad(a.Lat)
	lon1 := degToRad(a.Lon)
	lat2 := degToRad(b.Lat)
	lon2 := degToRad(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

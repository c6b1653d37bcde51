package services

import "steel-auction-service/internal/domain"

// Upper bounds (inclusive) of the distance bands, in km.
const (
	truckMaxKm = 500.0
	railMaxKm  = 3000.0
)

// ChooseMode picks the transport mode for a delivery leg by distance band:
// up to 500 km by truck, up to 3000 km by rail, ocean beyond that.
func ChooseMode(distanceKm float64) domain.TransportMode {
	switch {
	case distanceKm <= truckMaxKm:
		return domain.Truck
	case distanceKm <= railMaxKm:
		return domain.Rail
	default:
		return domain.Ocean
	}
}

// LogisticsCostPerTon prices transport as a fraction of the seller's own base
// cost per 1000 km, so cheaper producers also ship more cheaply.
func LogisticsCostPerTon(baseCost, distanceKm float64) (float64, domain.TransportMode) {
	mode := ChooseMode(distanceKm)
	return baseCost * mode.FractionPer1000Km() * (distanceKm / 1000.0), mode
}

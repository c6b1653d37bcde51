package catalog

import "steel-auction-service/internal/domain"

const (
	// Relative jitter applied to base cost and non-EAF msrp.
	DefaultJitterPct = 0.02
	// Every EAF seller lists at this msrp.
	EAFMSRP = 1000.0
)

// Reference producers, tuned so typical net prices land near recent
// hot-rolled coil levels (about 800-900 $/t) before large volume discounts.
var referenceSellers = []domain.Seller{
	// EAF / green steel
	// Charlotte, US
	{Name: "Nucor", Location: domain.Point{Lat: 35.2271, Lon: -80.8431}, MSRP: EAFMSRP, BaseCost: 780, RiskAversion: 1.20, IsEAF: true},
	// Pittsburgh, US
	{Name: "U.S. Steel", Location: domain.Point{Lat: 40.4406, Lon: -79.9959}, MSRP: EAFMSRP, BaseCost: 790, RiskAversion: 1.30, IsEAF: true},
	// Luxembourg
	{Name: "ArcelorMittal", Location: domain.Point{Lat: 49.6117, Lon: 6.1319}, MSRP: EAFMSRP, BaseCost: 795, RiskAversion: 1.25, IsEAF: true},
	// Tokyo, Japan
	{Name: "Nippon Steel", Location: domain.Point{Lat: 35.6762, Lon: 139.6503}, MSRP: EAFMSRP, BaseCost: 800, RiskAversion: 1.30, IsEAF: true},
	// Pohang, Korea
	{Name: "POSCO", Location: domain.Point{Lat: 36.0190, Lon: 129.3435}, MSRP: EAFMSRP, BaseCost: 790, RiskAversion: 1.28, IsEAF: true},
	// Shanghai, China
	{Name: "Baosteel", Location: domain.Point{Lat: 31.2304, Lon: 121.4737}, MSRP: EAFMSRP, BaseCost: 785, RiskAversion: 1.22, IsEAF: true},

	// Non-EAF / standard steel
	// Jamshedpur, India
	{Name: "Tata Steel", Location: domain.Point{Lat: 22.8046, Lon: 86.2029}, MSRP: 790, BaseCost: 750, RiskAversion: 1.35},
	// Duisburg, Germany
	{Name: "Thyssenkrupp", Location: domain.Point{Lat: 51.4352, Lon: 6.7627}, MSRP: 820, BaseCost: 770, RiskAversion: 1.32},
	// Cleveland, US
	{Name: "Cleveland-Cliffs", Location: domain.Point{Lat: 41.4993, Lon: -81.6944}, MSRP: 765, BaseCost: 720, RiskAversion: 1.30},
	// Vijayanagar, India
	{Name: "JSW Steel", Location: domain.Point{Lat: 15.3490, Lon: 74.1230}, MSRP: 720, BaseCost: 670, RiskAversion: 1.33},
	// Kaohsiung, Taiwan
	{Name: "China Steel Corp", Location: domain.Point{Lat: 22.6400, Lon: 120.3000}, MSRP: 745, BaseCost: 700, RiskAversion: 1.27},
}

// ReferenceSellers returns the nominal reference catalog without jitter.
func ReferenceSellers() []domain.Seller {
	out := make([]domain.Seller, len(referenceSellers))
	copy(out, referenceSellers)
	return out
}

// DefaultSellers returns the reference catalog with small random variation so
// seller profiles are not rigid: base cost moves by up to ±2%, and so does
// msrp for non-EAF sellers. EAF sellers always list at EAFMSRP.
//
// rng drives the variation; pass NewSeededRand for reproducible catalogs or
// NoJitter for nominal figures. A nil rng uses a time-seeded source.
func DefaultSellers(rng RandSource) []domain.Seller {
	if rng == nil {
		rng = newTimeSeededRand()
	}

	sellers := ReferenceSellers()
	for i := range sellers {
		s := &sellers[i]
		s.BaseCost = jitter(s.BaseCost, DefaultJitterPct, rng)
		if s.IsEAF {
			s.MSRP = EAFMSRP
		} else {
			s.MSRP = jitter(s.MSRP, DefaultJitterPct, rng)
		}
	}

	return sellers
}

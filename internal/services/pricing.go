package services

import (
	"steel-auction-service/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// Share of the risk buffer passed through to the offer price.
	riskBufferPassThrough = decimal.NewFromFloat(0.5)
	eafDiscountRate       = decimal.NewFromFloat(0.06)
)

// Volume discount steps, checked in order. Quantities above the last bound
// get topVolumeDiscount.
var volumeDiscountSteps = []struct {
	maxTons float64
	pct     float64
}{
	{maxTons: 1_000, pct: 0.00},
	{maxTons: 5_000, pct: 0.03},
	{maxTons: 20_000, pct: 0.07},
}

const topVolumeDiscount = 0.12

// VolumeDiscountPct returns the fraction discounted from the gross total for
// an order of the given size. Step function, no interpolation between bands.
func VolumeDiscountPct(quantityTons float64) float64 {
	for _, step := range volumeDiscountSteps {
		if quantityTons <= step.maxTons {
			return step.pct
		}
	}
	return topVolumeDiscount
}

// RiskBufferPerTon scales the seller's unrealized margin by its risk aversion.
// A seller priced at or below its own cost carries no buffer.
func RiskBufferPerTon(seller domain.Seller) float64 {
	return toFloat(riskBuffer(seller))
}

func riskBuffer(seller domain.Seller) decimal.Decimal {
	margin := decimal.NewFromFloat(seller.MSRP).Sub(decimal.NewFromFloat(seller.BaseCost))
	if margin.IsNegative() {
		margin = decimal.Zero
	}
	aversion := decimal.NewFromFloat(seller.RiskAversion).Sub(decimal.NewFromInt(1))
	return aversion.Mul(margin)
}

// QuoteSeller prices a delivery of quantityTons from seller to buyer.
//
// Processing flow (each step feeds the next; discounts compound):
//  1. Distance and transport mode
//  2. Cost per ton = base cost + logistics
//  3. Offer per ton = cost + half the risk buffer
//  4. Volume discount on the gross total
//  5. EAF discount on the volume-discounted total
//  6. Net total and net price per ton
//
// quantityTons must be positive; RunAuction enforces that before calling.
func QuoteSeller(seller domain.Seller, buyer domain.Point, quantityTons float64) domain.Quote {
	distanceKm := DistanceKm(seller.Location, buyer)
	logisticsCost, mode := LogisticsCostPerTon(seller.BaseCost, distanceKm)

	qty := decimal.NewFromFloat(quantityTons)

	costPerTon := decimal.NewFromFloat(seller.BaseCost).Add(decimal.NewFromFloat(logisticsCost))
	buffer := riskBuffer(seller)
	offerPerTon := costPerTon.Add(buffer.Mul(riskBufferPassThrough))

	grossUndiscounted := offerPerTon.Mul(qty)

	volumePct := VolumeDiscountPct(quantityTons)
	volumeDiscount := grossUndiscounted.Mul(decimal.NewFromFloat(volumePct))
	gross := grossUndiscounted.Sub(volumeDiscount)

	eafDiscount := decimal.Zero
	if seller.IsEAF {
		eafDiscount = decimal.NewFromFloat(seller.RiskAversion).Mul(eafDiscountRate).Mul(gross)
	}

	net := gross.Sub(eafDiscount)
	netPerTon := net.Div(qty)

	return domain.Quote{
		SellerName:             seller.Name,
		DistanceKm:             distanceKm,
		TransportMode:          mode,
		CostPerTon:             toFloat(costPerTon),
		RiskBufferPerTon:       toFloat(buffer),
		OfferPricePerTon:       toFloat(offerPerTon),
		GrossTotalUndiscounted: toFloat(grossUndiscounted),
		VolumeDiscountPct:      volumePct,
		VolumeDiscountTotal:    toFloat(volumeDiscount),
		GrossTotal:             toFloat(gross),
		IsEAF:                  seller.IsEAF,
		EAFDiscountTotal:       toFloat(eafDiscount),
		NetTotal:               toFloat(net),
		NetPricePerTon:         toFloat(netPerTon),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

package services

import (
	"math"
	"steel-auction-service/internal/domain"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestChooseMode(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       domain.TransportMode
	}{
		{name: "zero distance", distanceKm: 0, want: domain.Truck},
		{name: "truck upper bound is inclusive", distanceKm: 500.0, want: domain.Truck},
		{name: "just past truck range", distanceKm: 500.0001, want: domain.Rail},
		{name: "rail upper bound is inclusive", distanceKm: 3000.0, want: domain.Rail},
		{name: "just past rail range", distanceKm: 3000.0001, want: domain.Ocean},
		{name: "intercontinental", distanceKm: 11000, want: domain.Ocean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.want, ChooseMode(tt.distanceKm))
		})
	}
}

func TestLogisticsCostPerTon(t *testing.T) {
	tests := []struct {
		name       string
		baseCost   float64
		distanceKm float64
		wantCost   float64
		wantMode   domain.TransportMode
	}{
		{name: "no distance costs nothing", baseCost: 780, distanceKm: 0, wantCost: 0, wantMode: domain.Truck},
		{name: "truck 1% per 1000 km", baseCost: 800, distanceKm: 400, wantCost: 3.2, wantMode: domain.Truck},
		{name: "rail 0.5% per 1000 km", baseCost: 800, distanceKm: 1000, wantCost: 4.0, wantMode: domain.Rail},
		{name: "ocean 0.2% per 1000 km", baseCost: 700, distanceKm: 10000, wantCost: 14.0, wantMode: domain.Ocean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, mode := LogisticsCostPerTon(tt.baseCost, tt.distanceKm)
			check.Equal(t, tt.wantMode, mode)
			check.True(t, math.Abs(cost-tt.wantCost) < floatTolerance)
		})
	}
}

func TestLogisticsCostScalesWithBaseCost(t *testing.T) {
	cheap, _ := LogisticsCostPerTon(600, 2000)
	dear, _ := LogisticsCostPerTon(900, 2000)

	check.True(t, cheap < dear)
}

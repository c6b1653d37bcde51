package services

import (
	"math"
	"math/rand/v2"
	"steel-auction-service/internal/domain"
	"testing"

	"github.com/peterldowns/testy/check"
)

const floatTolerance = 1e-9

func randomPoint(r *rand.Rand) domain.Point {
	return domain.Point{
		Lat: r.Float64()*180 - 90,
		Lon: r.Float64()*360 - 180,
	}
}

func TestDistanceKm_SymmetricAndZero(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		a := randomPoint(r)
		b := randomPoint(r)

		check.True(t, math.Abs(DistanceKm(a, b)-DistanceKm(b, a)) < floatTolerance)
		check.True(t, DistanceKm(a, a) < floatTolerance)
		check.True(t, DistanceKm(a, b) >= 0)
		// Nothing on a sphere is farther than half its circumference.
		check.True(t, DistanceKm(a, b) <= math.Pi*earthRadiusKm+floatTolerance)
	}
}

func TestDistanceKm_KnownCities(t *testing.T) {
	chicago := domain.Point{Lat: 41.8781, Lon: -87.6298}
	pittsburgh := domain.Point{Lat: 40.4406, Lon: -79.9959}

	d := DistanceKm(chicago, pittsburgh)
	check.True(t, d > 650 && d < 670)
}

func TestDistanceKm_QuarterMeridian(t *testing.T) {
	equator := domain.Point{Lat: 0, Lon: 0}
	pole := domain.Point{Lat: 90, Lon: 0}

	want := earthRadiusKm * math.Pi / 2
	check.True(t, math.Abs(DistanceKm(equator, pole)-want) < 1e-6)
}

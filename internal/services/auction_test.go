package services

import (
	"context"
	"errors"
	"math"
	"steel-auction-service/internal/adapters/geocode"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/domain"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

var chicago = domain.Point{Lat: 41.8781, Lon: -87.6298}

func TestRunAuction_WinnerIsMinimumNetPrice(t *testing.T) {
	sellers := catalog.DefaultSellers(catalog.NewSeededRand(7))

	result, err := RunAuction(sellers, chicago, 10_000)
	assert.NoError(t, err)
	assert.NotNil(t, result)

	check.Equal(t, len(sellers), len(result.Bids))
	check.Equal(t, chicago, result.BuyerLocation)

	for _, b := range result.Bids {
		check.True(t, result.Winner.Quote.NetPricePerTon <= b.Quote.NetPricePerTon)
		check.Equal(t, 10_000.0, b.QuantityTons)
	}
}

func TestRunAuction_BidsKeepInputOrder(t *testing.T) {
	sellers := catalog.DefaultSellers(catalog.NoJitter)

	result, err := RunAuction(sellers, chicago, 2_500)
	assert.NoError(t, err)

	for i, b := range result.Bids {
		check.Equal(t, sellers[i].Name, b.Seller.Name)
		check.Equal(t, sellers[i].Name, b.Quote.SellerName)
	}
}

func TestRunAuction_TieGoesToEarliestSeller(t *testing.T) {
	first := eafSeller()
	first.Name = "First"
	second := eafSeller()
	second.Name = "Second"
	pricier := eafSeller()
	pricier.Name = "Pricier"
	pricier.BaseCost = 900

	result, err := RunAuction([]domain.Seller{pricier, first, second}, charlotte, 10_000)
	assert.NoError(t, err)

	check.Equal(t, result.Bids[1].Quote.NetPricePerTon, result.Bids[2].Quote.NetPricePerTon)
	check.Equal(t, "First", result.Winner.Seller.Name)

	result, err = RunAuction([]domain.Seller{second, first}, charlotte, 10_000)
	assert.NoError(t, err)
	check.Equal(t, "Second", result.Winner.Seller.Name)
}

func TestRunAuction_NearbySellerBeatsIdenticalRemoteSeller(t *testing.T) {
	remote := eafSeller()
	remote.Name = "Remote"
	remote.Location = domain.Point{Lat: 35.6762, Lon: 139.6503}
	local := eafSeller()
	local.Name = "Local"

	result, err := RunAuction([]domain.Seller{remote, local}, charlotte, 10_000)
	assert.NoError(t, err)

	check.Equal(t, "Local", result.Winner.Seller.Name)
	check.Equal(t, domain.Ocean, result.Bids[0].Quote.TransportMode)
	check.Equal(t, 692.15808, result.Winner.Quote.NetPricePerTon)
	check.Equal(t, result.Winner.Quote.NetTotal, result.Winner.TotalNetCost())
}

func TestRunAuction_InvalidInput(t *testing.T) {
	sellers := []domain.Seller{eafSeller()}

	badSeller := eafSeller()
	badSeller.RiskAversion = 2

	tests := []struct {
		name    string
		sellers []domain.Seller
		buyer   domain.Point
		qty     float64
	}{
		{name: "no sellers", sellers: nil, buyer: chicago, qty: 100},
		{name: "zero quantity", sellers: sellers, buyer: chicago, qty: 0},
		{name: "negative quantity", sellers: sellers, buyer: chicago, qty: -10},
		{name: "nan quantity", sellers: sellers, buyer: chicago, qty: math.NaN()},
		{name: "infinite quantity", sellers: sellers, buyer: chicago, qty: math.Inf(1)},
		{name: "latitude out of range", sellers: sellers, buyer: domain.Point{Lat: 91, Lon: 0}, qty: 100},
		{name: "longitude out of range", sellers: sellers, buyer: domain.Point{Lat: 0, Lon: 181}, qty: 100},
		{name: "invalid seller record", sellers: []domain.Seller{badSeller}, buyer: chicago, qty: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RunAuction(tt.sellers, tt.buyer, tt.qty)
			check.Nil(t, result)
			check.Error(t, err)
			check.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestRunAuctionForAddress_ResolvesThenRuns(t *testing.T) {
	resolver := geocode.NewStaticResolver(geocode.DefaultAddressBook())
	sellers := catalog.DefaultSellers(catalog.NoJitter)

	result, err := RunAuctionForAddress(context.Background(), sellers, "  Chicago, IL ", resolver, 10_000)
	assert.NoError(t, err)

	direct, err := RunAuction(sellers, chicago, 10_000)
	assert.NoError(t, err)

	check.Equal(t, direct, result)
}

func TestRunAuctionForAddress_UnresolvableAddress(t *testing.T) {
	resolver := geocode.NewMockResolver(map[string]domain.Point{"chicago, il": chicago})

	result, err := RunAuctionForAddress(
		context.Background(),
		[]domain.Seller{eafSeller()},
		"Atlantis",
		resolver,
		10_000,
	)

	check.Nil(t, result)
	check.Error(t, err)
	check.True(t, errors.Is(err, domain.ErrLocationNotFound))
	check.False(t, errors.Is(err, domain.ErrInvalidInput))
	check.Equal(t, 1, resolver.Calls())
}

func TestRunAuctionForAddress_ResolverFailurePropagates(t *testing.T) {
	boom := errors.New("geocoder unavailable")
	resolver := geocode.NewFailingResolver(boom)

	_, err := RunAuctionForAddress(context.Background(), []domain.Seller{eafSeller()}, "Chicago, IL", resolver, 100)

	check.True(t, errors.Is(err, boom))
	check.False(t, errors.Is(err, domain.ErrLocationNotFound))
}

func TestRunAuctionForAddress_EmptyAddress(t *testing.T) {
	resolver := geocode.NewMockResolver(nil)

	_, err := RunAuctionForAddress(context.Background(), []domain.Seller{eafSeller()}, "   ", resolver, 100)

	check.True(t, errors.Is(err, domain.ErrInvalidInput))
	check.Equal(t, 0, resolver.Calls())
}

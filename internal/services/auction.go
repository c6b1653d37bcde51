package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
	"steel-auction-service/internal/ports"
	"strings"
)

// RunAuction runs a single-round reverse auction for quantityTons delivered
// to buyer.
//
// Every seller is quoted independently. The winner is the bid with the lowest
// net price per ton; on an exact tie the seller listed first wins. Bids are
// returned in seller order.
//
// Input is validated before any pricing: an empty seller list, a non-positive
// quantity or an invalid location fails with domain.ErrInvalidInput.
func RunAuction(
	sellers []domain.Seller,
	buyer domain.Point,
	quantityTons float64,
) (*domain.AuctionResult, error) {
	if len(sellers) == 0 {
		return nil, fmt.Errorf("run auction: %w: seller list must not be empty", domain.ErrInvalidInput)
	}

	if err := ValidateQuantity(quantityTons); err != nil {
		return nil, fmt.Errorf("run auction: %w", err)
	}

	if err := buyer.Validate(); err != nil {
		return nil, fmt.Errorf("run auction: buyer location: %w", err)
	}

	for _, s := range sellers {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("run auction: %w", err)
		}
	}

	bids := make([]domain.Bid, 0, len(sellers))
	for _, s := range sellers {
		bids = append(bids, domain.Bid{
			Seller:       s,
			Quote:        QuoteSeller(s, buyer, quantityTons),
			QuantityTons: quantityTons,
		})
	}

	// Strict comparison keeps the earliest seller on ties.
	winner := 0
	for i := 1; i < len(bids); i++ {
		if bids[i].Quote.NetPricePerTon < bids[winner].Quote.NetPricePerTon {
			winner = i
		}
	}

	return &domain.AuctionResult{
		Winner:        bids[winner],
		Bids:          bids,
		BuyerLocation: buyer,
	}, nil
}

// RunAuctionForAddress resolves buyerAddress and then runs the auction.
// An unknown address fails with domain.ErrLocationNotFound before any seller
// is quoted.
func RunAuctionForAddress(
	ctx context.Context,
	sellers []domain.Seller,
	buyerAddress string,
	resolver ports.LocationResolver,
	quantityTons float64,
) (_ *domain.AuctionResult, err error) {
	defer obs.Time(ctx, "auction.RunForAddress")(&err)

	if resolver == nil {
		return nil, errors.New("run auction for address: resolver is nil")
	}

	if strings.TrimSpace(buyerAddress) == "" {
		return nil, fmt.Errorf("run auction for address: %w: buyer address must not be empty", domain.ErrInvalidInput)
	}

	buyer, err := resolver.Resolve(ctx, buyerAddress)
	if err != nil {
		return nil, fmt.Errorf("run auction for address: resolve %q: %w", buyerAddress, err)
	}

	return RunAuction(sellers, buyer, quantityTons)
}

// ValidateQuantity checks that an order size is a positive, finite number of tons.
func ValidateQuantity(quantityTons float64) error {
	if math.IsNaN(quantityTons) || math.IsInf(quantityTons, 0) || quantityTons <= 0 {
		return fmt.Errorf("%w: quantity_tons must be a positive number, got %v", domain.ErrInvalidInput, quantityTons)
	}
	return nil
}

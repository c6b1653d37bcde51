package ports

import (
	"context"
	"steel-auction-service/internal/domain"
)

// Port: a boundary for retrieving the sellers taking part in auctions.
type SellerCatalog interface {
	// Return all sellers in catalog order.
	ListSellers(ctx context.Context) ([]domain.Seller, error)
}

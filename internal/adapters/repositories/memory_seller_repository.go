package repositories

import (
	"context"
	"steel-auction-service/internal/domain"
)

// In-memory SellerCatalog over a fixed list, used when no database is configured.
type MemorySellerRepository struct {
	sellers []domain.Seller
}

func NewMemorySellerRepository(sellers []domain.Seller) *MemorySellerRepository {
	cp := make([]domain.Seller, len(sellers))
	copy(cp, sellers)
	return &MemorySellerRepository{sellers: cp}
}

// Return a copy of the sellers so callers cannot mutate the catalog.
func (m *MemorySellerRepository) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	out := make([]domain.Seller, len(m.sellers))
	copy(out, m.sellers)
	return out, nil
}

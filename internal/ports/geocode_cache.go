package ports

import (
	"context"
	"steel-auction-service/internal/domain"
)

// Persistent or shared store of previously resolved addresses.
// Keys are normalized by the caller.
type GeocodeCache interface {
	// Return cached points for the addresses that have an entry; misses are omitted.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Point, error)
	// Store address -> point mappings.
	PutMany(ctx context.Context, results map[string]domain.Point) error
}

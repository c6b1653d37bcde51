package ports

import (
	"context"
	"steel-auction-service/internal/domain"
)

// Contract for turning a buyer address into coordinates.
type LocationResolver interface {
	// Return the coordinates for address.
	// Unknown addresses fail with an error wrapping domain.ErrLocationNotFound.
	Resolve(ctx context.Context, address string) (domain.Point, error)
}

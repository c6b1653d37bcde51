package ports

import (
	"context"
	"steel-auction-service/internal/domain"
)

// AddressBook is the stored set of buyer addresses the service can resolve.
// Keys are normalized addresses.
type AddressBook interface {
	// LookupMany returns the points for the addresses present in the book;
	// absent addresses are simply missing from the result.
	LookupMany(ctx context.Context, addresses []string) (map[string]domain.Point, error)
	ListAddresses(ctx context.Context) ([]string, error)
}

// AddressDirectory lists the addresses a resolver is able to answer.
type AddressDirectory interface {
	KnownAddresses(ctx context.Context) ([]string, error)
}

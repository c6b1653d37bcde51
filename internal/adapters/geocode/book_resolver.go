package geocode

import (
	"context"
	"errors"
	"fmt"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
	"steel-auction-service/internal/ports"
)

// BookResolver resolves addresses against a stored address book.
type BookResolver struct {
	book ports.AddressBook
}

func NewBookResolver(book ports.AddressBook) (*BookResolver, error) {
	if book == nil {
		return nil, errors.New("book resolver: address book is nil")
	}
	return &BookResolver{book: book}, nil
}

func (b *BookResolver) Resolve(ctx context.Context, address string) (_ domain.Point, err error) {
	defer obs.Time(ctx, "geocode.book.Resolve")(&err)

	key := NormalizeAddress(address)
	if key == "" {
		return domain.Point{}, fmt.Errorf("book resolver: %w: empty address", domain.ErrLocationNotFound)
	}

	hits, err := b.book.LookupMany(ctx, []string{key})
	if err != nil {
		return domain.Point{}, fmt.Errorf("book resolver: %w", err)
	}

	p, ok := hits[key]
	if !ok {
		return domain.Point{}, fmt.Errorf("book resolver: %w: %q", domain.ErrLocationNotFound, address)
	}
	return p, nil
}

// KnownAddresses lists the stored address keys.
func (b *BookResolver) KnownAddresses(ctx context.Context) ([]string, error) {
	return b.book.ListAddresses(ctx)
}

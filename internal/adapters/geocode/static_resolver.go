package geocode

import (
	"context"
	"fmt"
	"slices"
	"steel-auction-service/internal/domain"
)

// StaticResolver resolves addresses from a fixed in-memory address book.
// Matching is trimmed and case-insensitive. Safe for concurrent use; the book
// is never mutated after construction.
type StaticResolver struct {
	book map[string]domain.Point
}

// DefaultAddressBook holds the buyer warehouses known out of the box.
func DefaultAddressBook() map[string]domain.Point {
	return map[string]domain.Point{
		"central us warehouse": {Lat: 41.8781, Lon: -87.6298}, // Chicago
		"chicago, il":          {Lat: 41.8781, Lon: -87.6298},
		"pittsburgh, pa":       {Lat: 40.4406, Lon: -79.9959},
	}
}

func NewStaticResolver(book map[string]domain.Point) *StaticResolver {
	return &StaticResolver{book: NormalizeBook(book)}
}

// NormalizeBook re-keys book by normalized address, the form stored address
// books use.
func NormalizeBook(book map[string]domain.Point) map[string]domain.Point {
	m := make(map[string]domain.Point, len(book))
	for addr, p := range book {
		m[NormalizeAddress(addr)] = p
	}
	return m
}

func (s *StaticResolver) Resolve(ctx context.Context, address string) (domain.Point, error) {
	p, ok := s.book[NormalizeAddress(address)]
	if !ok {
		return domain.Point{}, fmt.Errorf("static resolver: %w: %q", domain.ErrLocationNotFound, address)
	}
	return p, nil
}

// KnownAddresses lists the normalized address keys in sorted order.
func (s *StaticResolver) KnownAddresses(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(s.book))
	for addr := range s.book {
		out = append(out, addr)
	}
	slices.Sort(out)
	return out, nil
}

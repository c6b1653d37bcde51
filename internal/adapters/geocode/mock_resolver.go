package geocode

import (
	"context"
	"fmt"
	"steel-auction-service/internal/domain"
	"sync/atomic"
)

// MockResolver resolves exact address strings and counts lookups.
type MockResolver struct {
	m     map[string]domain.Point
	err   error
	calls atomic.Int64
}

func NewMockResolver(points map[string]domain.Point) *MockResolver {
	return &MockResolver{m: points}
}

// NewFailingResolver returns a resolver whose every lookup fails with err.
func NewFailingResolver(err error) *MockResolver {
	return &MockResolver{err: err}
}

func (r *MockResolver) Resolve(ctx context.Context, address string) (domain.Point, error) {
	r.calls.Add(1)

	if r.err != nil {
		return domain.Point{}, r.err
	}

	p, ok := r.m[address]
	if !ok {
		return domain.Point{}, fmt.Errorf("mock resolver: %w: %q", domain.ErrLocationNotFound, address)
	}

	return p, nil
}

// Calls reports how many lookups reached the resolver.
func (r *MockResolver) Calls() int { return int(r.calls.Load()) }

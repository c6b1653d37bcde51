// Package catalog builds the seller list auctions run against: the reference
// producers, optional price jitter, and loading from a YAML file.
package catalog

import (
	"fmt"
	"steel-auction-service/internal/domain"
	"strings"
)

// Validate checks that sellers form a usable catalog: non-empty, every record
// valid, names unique (case-insensitive).
func Validate(sellers []domain.Seller) error {
	if len(sellers) == 0 {
		return fmt.Errorf("validate catalog: %w: catalog is empty", domain.ErrInvalidInput)
	}

	seen := make(map[string]int, len(sellers))
	for i, s := range sellers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("validate catalog: seller #%d: %w", i+1, err)
		}

		key := strings.ToLower(strings.TrimSpace(s.Name))
		if prev, ok := seen[key]; ok {
			return fmt.Errorf(
				"validate catalog: %w: seller #%d duplicates name %q of seller #%d",
				domain.ErrInvalidInput, i+1, s.Name, prev,
			)
		}
		seen[key] = i + 1
	}

	return nil
}

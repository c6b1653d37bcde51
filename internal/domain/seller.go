package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	MinRiskAversion = 1.0
	MaxRiskAversion = 1.5
)

// A steel producer taking part in the reverse auction.
// Sellers are owned by the catalog and treated as read-only while an auction runs.
type Seller struct {
	Name     string
	Location Point
	// Nominal reference price per ton.
	MSRP float64
	// Production cost per ton, excluding logistics.
	BaseCost float64
	// Scales the margin-based risk buffer, in [1.0, 1.5].
	RiskAversion float64
	// Electric-arc-furnace (green) steel; eligible for the EAF discount.
	IsEAF bool
}

// Validate checks the catalog invariants for a single seller record.
func (s Seller) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: seller name must not be empty", ErrInvalidInput)
	}
	if err := s.Location.Validate(); err != nil {
		return fmt.Errorf("seller %q location: %w", s.Name, err)
	}
	if !positiveFinite(s.MSRP) {
		return fmt.Errorf("%w: seller %q msrp must be > 0, got %v", ErrInvalidInput, s.Name, s.MSRP)
	}
	if !positiveFinite(s.BaseCost) {
		return fmt.Errorf("%w: seller %q base_cost must be > 0, got %v", ErrInvalidInput, s.Name, s.BaseCost)
	}
	if math.IsNaN(s.RiskAversion) || s.RiskAversion < MinRiskAversion || s.RiskAversion > MaxRiskAversion {
		return fmt.Errorf(
			"%w: seller %q risk_aversion must be in [%.1f, %.1f], got %v",
			ErrInvalidInput, s.Name, MinRiskAversion, MaxRiskAversion, s.RiskAversion,
		)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

package domain

import (
	"encoding/json"
	"fmt"
)

// TransportMode is the delivery mode picked for a seller -> buyer leg.
// The zero value is not a valid mode.
type TransportMode int

const (
	Truck TransportMode = iota + 1
	Rail
	Ocean
)

// FractionPer1000Km is the share of a seller's base cost charged per 1000 km
// of transport in this mode.
//
// Panics on a mode outside {Truck, Rail, Ocean}: a mode is only ever produced
// by distance-band selection, so anything else is a programming error.
func (m TransportMode) FractionPer1000Km() float64 {
	switch m {
	case Truck:
		return 0.010
	case Rail:
		return 0.005
	case Ocean:
		return 0.002
	}
	panic(fmt.Sprintf("transport mode: unknown mode %d", int(m)))
}

func (m TransportMode) String() string {
	switch m {
	case Truck:
		return "truck"
	case Rail:
		return "rail"
	case Ocean:
		return "ocean"
	}
	return fmt.Sprintf("TransportMode(%d)", int(m))
}

func (m TransportMode) MarshalJSON() ([]byte, error) {
	switch m {
	case Truck, Rail, Ocean:
		return json.Marshal(m.String())
	}
	return nil, fmt.Errorf("marshal transport mode: unknown mode %d", int(m))
}

func (m *TransportMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unmarshal transport mode: %w", err)
	}

	parsed, err := ParseTransportMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseTransportMode maps "truck", "rail" or "ocean" to a mode.
func ParseTransportMode(s string) (TransportMode, error) {
	switch s {
	case "truck":
		return Truck, nil
	case "rail":
		return Rail, nil
	case "ocean":
		return Ocean, nil
	}
	return 0, fmt.Errorf("parse transport mode: unknown mode %q", s)
}

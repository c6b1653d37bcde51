package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		wantErr bool
	}{
		{name: "origin", point: Point{Lat: 0, Lon: 0}},
		{name: "corners", point: Point{Lat: -90, Lon: 180}},
		{name: "chicago", point: Point{Lat: 41.8781, Lon: -87.6298}},
		{name: "latitude too high", point: Point{Lat: 90.0001, Lon: 0}, wantErr: true},
		{name: "longitude too low", point: Point{Lat: 0, Lon: -180.5}, wantErr: true},
		{name: "nan latitude", point: Point{Lat: math.NaN(), Lon: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if !tt.wantErr {
				check.NoError(t, err)
				return
			}
			check.Error(t, err)
			check.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestSellerValidate(t *testing.T) {
	valid := Seller{
		Name:         "Nucor",
		Location:     Point{Lat: 35.2271, Lon: -80.8431},
		MSRP:         1000,
		BaseCost:     780,
		RiskAversion: 1.2,
		IsEAF:        true,
	}
	check.NoError(t, valid.Validate())

	noName := valid
	noName.Name = "  "
	check.True(t, errors.Is(noName.Validate(), ErrInvalidInput))

	zeroCost := valid
	zeroCost.BaseCost = 0
	check.True(t, errors.Is(zeroCost.Validate(), ErrInvalidInput))

	badRisk := valid
	badRisk.RiskAversion = 1.6
	check.True(t, errors.Is(badRisk.Validate(), ErrInvalidInput))

	badLocation := valid
	badLocation.Location = Point{Lat: 120, Lon: 0}
	check.True(t, errors.Is(badLocation.Validate(), ErrInvalidInput))
}

func TestTransportModeFractions(t *testing.T) {
	check.Equal(t, 0.010, Truck.FractionPer1000Km())
	check.Equal(t, 0.005, Rail.FractionPer1000Km())
	check.Equal(t, 0.002, Ocean.FractionPer1000Km())
}

func TestTransportModeUnknownPanics(t *testing.T) {
	defer func() {
		check.NotNil(t, recover())
	}()
	TransportMode(0).FractionPer1000Km()
	t.Fatal("expected panic for zero transport mode")
}

func TestTransportModeJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Mode TransportMode `json:"mode"`
	}{Mode: Rail})
	assert.NoError(t, err)
	check.Equal(t, `{"mode":"rail"}`, string(b))

	var decoded struct {
		Mode TransportMode `json:"mode"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"mode":"ocean"}`), &decoded))
	check.Equal(t, Ocean, decoded.Mode)

	check.Error(t, json.Unmarshal([]byte(`{"mode":"barge"}`), &decoded))

	_, err = json.Marshal(TransportMode(7))
	check.Error(t, err)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/domain"
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2500", 2500, true},
		{" 750.5 ", 750.5, true},
		{"", defaultQuantityTons, false},
		{"abc", defaultQuantityTons, false},
		{"0", defaultQuantityTons, false},
		{"-10", defaultQuantityTons, false},
		{"NaN", defaultQuantityTons, false},
		{"Inf", defaultQuantityTons, false},
		{"100000", 100_000, true},
		{"5,000", 5000, true},
		{" 12,500.5 ", 12500.5, true},
		{"100001", defaultQuantityTons, false},
	}

	for _, tc := range cases {
		got, ok := parseQuantity(tc.in)
		check.Equal(t, tc.want, got)
		check.Equal(t, tc.ok, ok)
	}
}

func TestRun_PrintsWinner(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("pittsburgh, pa\nlots\n")

	err := run(context.Background(), in, &out, catalog.ReferenceSellers())
	assert.NoError(t, err)

	s := out.String()
	check.True(t, strings.Contains(s, `Invalid quantity "lots", using 10000 tons.`))
	check.True(t, strings.Contains(s, "Winner: "))
	check.True(t, strings.Contains(s, "Cleveland-Cliffs"))
	check.True(t, strings.Contains(s, "40.4406"))
}

func TestRun_DefaultsOnEmptyInput(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader(""), &out, catalog.ReferenceSellers())
	assert.NoError(t, err)
	check.True(t, strings.Contains(out.String(), "Winner: "))
	check.False(t, strings.Contains(out.String(), "Invalid quantity"))
}

func TestRun_UnknownAddress(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader("Atlantis\n100\n"), &out, catalog.ReferenceSellers())
	check.True(t, errors.Is(err, domain.ErrLocationNotFound))
	check.True(t, strings.Contains(out.String(), `Unknown address "Atlantis"`))
	check.True(t, strings.Contains(out.String(), "chicago, il"))
	check.False(t, strings.Contains(out.String(), "Winner: "))
}

func TestRun_ThousandsSeparatorAndBreakdown(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), strings.NewReader("chicago, il\n5,000\n"), &out, catalog.ReferenceSellers())
	assert.NoError(t, err)

	s := out.String()
	check.False(t, strings.Contains(s, "Invalid quantity"))
	check.True(t, strings.Contains(s, "for 5000 t"))
	for _, col := range []string{"Cost/t", "Buffer/t", "Gross0 $", "Vol disc $", "Gross $", "EAF disc $"} {
		check.True(t, strings.Contains(s, col))
	}
	// 5,000 t sits in the 3% band.
	check.True(t, strings.Contains(s, "3.0%"))
}

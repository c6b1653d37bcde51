package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"steel-auction-service/internal/domain"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestDefaultSellers_SeededIsReproducible(t *testing.T) {
	a := DefaultSellers(NewSeededRand(42))
	b := DefaultSellers(NewSeededRand(42))

	check.Equal(t, a, b)
	check.Equal(t, 11, len(a))
}

func TestDefaultSellers_DifferentSeedsDiffer(t *testing.T) {
	a := DefaultSellers(NewSeededRand(1))
	b := DefaultSellers(NewSeededRand(2))

	check.NotEqual(t, a, b)
}

func TestDefaultSellers_NoJitterMatchesReference(t *testing.T) {
	check.Equal(t, ReferenceSellers(), DefaultSellers(NoJitter))
}

func TestDefaultSellers_JitterStaysWithinBounds(t *testing.T) {
	ref := ReferenceSellers()

	for seed := uint64(0); seed < 50; seed++ {
		sellers := DefaultSellers(NewSeededRand(seed))
		assert.NoError(t, Validate(sellers))

		for i, s := range sellers {
			check.Equal(t, ref[i].Name, s.Name)
			check.True(t, math.Abs(s.BaseCost/ref[i].BaseCost-1) <= DefaultJitterPct)

			if s.IsEAF {
				check.Equal(t, EAFMSRP, s.MSRP)
				continue
			}
			check.True(t, math.Abs(s.MSRP/ref[i].MSRP-1) <= DefaultJitterPct)
		}
	}
}

func TestDefaultSellers_EAFListPriceIsPinned(t *testing.T) {
	for _, s := range DefaultSellers(NoJitter) {
		if s.IsEAF {
			check.Equal(t, EAFMSRP, s.MSRP)
		}
	}
}

func TestReferenceSellers_EAFListAtPinnedPrice(t *testing.T) {
	eaf := 0
	for _, s := range ReferenceSellers() {
		if s.IsEAF {
			eaf++
			check.Equal(t, EAFMSRP, s.MSRP)
		}
	}
	check.Equal(t, 6, eaf)
}

func TestDefaultSellers_NilRandUsesTimeSeed(t *testing.T) {
	sellers := DefaultSellers(nil)
	check.Equal(t, 11, len(sellers))
	check.NoError(t, Validate(sellers))
}

func TestValidate(t *testing.T) {
	check.True(t, errors.Is(Validate(nil), domain.ErrInvalidInput))

	dup := ReferenceSellers()
	dup[1].Name = "NUCOR"
	err := Validate(dup)
	check.Error(t, err)
	check.True(t, errors.Is(err, domain.ErrInvalidInput))

	bad := ReferenceSellers()
	bad[3].RiskAversion = 0.9
	check.True(t, errors.Is(Validate(bad), domain.ErrInvalidInput))
}

func TestParseYAML(t *testing.T) {
	t.Setenv("NUCOR_COST", "780")

	doc := []byte(`
sellers:
  - name: Nucor
    location: {lat: 35.2271, lon: -80.8431}
    msrp: 1000
    base_cost: ${NUCOR_COST}
    risk_aversion: 1.2
    is_eaf: true
  - name: Tata Steel
    location: {lat: 22.8046, lon: 86.2029}
    msrp: 790
    base_cost: 750
    risk_aversion: 1.35
`)

	sellers, err := ParseYAML(doc)
	assert.NoError(t, err)
	check.Equal(t, 2, len(sellers))
	check.Equal(t, "Nucor", sellers[0].Name)
	check.Equal(t, 780.0, sellers[0].BaseCost)
	check.True(t, sellers[0].IsEAF)
	check.False(t, sellers[1].IsEAF)
	check.Equal(t, domain.Point{Lat: 22.8046, Lon: 86.2029}, sellers[1].Location)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("sellers: [::"))
	check.Error(t, err)

	_, err = ParseYAML([]byte("sellers: []"))
	check.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ParseYAML([]byte(`
sellers:
  - name: Broken
    location: {lat: 95, lon: 0}
    msrp: 900
    base_cost: 800
    risk_aversion: 1.1
`))
	check.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLoadYAML_ReadsExportedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sellers.yaml")

	b, err := MarshalYAML(ReferenceSellers())
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, b, 0o600))

	sellers, err := LoadYAML(path)
	assert.NoError(t, err)
	check.Equal(t, ReferenceSellers(), sellers)

	_, err = LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	check.Error(t, err)
}

package catalog

import (
	"fmt"
	"os"
	"steel-auction-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Sellers []sellerRecord `yaml:"sellers"`
}

type sellerRecord struct {
	Name     string `yaml:"name"`
	Location struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"location"`
	MSRP         float64 `yaml:"msrp"`
	BaseCost     float64 `yaml:"base_cost"`
	RiskAversion float64 `yaml:"risk_aversion"`
	IsEAF        bool    `yaml:"is_eaf"`
}

// LoadYAML reads a seller catalog file, expanding ${VAR} environment
// variables, and validates the result.
func LoadYAML(path string) ([]domain.Seller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	sellers, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	return sellers, nil
}

// ParseYAML decodes and validates a seller catalog document.
func ParseYAML(data []byte) ([]domain.Seller, error) {
	expanded := os.ExpandEnv(string(data))

	var doc fileCatalog
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	sellers := make([]domain.Seller, 0, len(doc.Sellers))
	for _, r := range doc.Sellers {
		sellers = append(sellers, domain.Seller{
			Name:         r.Name,
			Location:     domain.Point{Lat: r.Location.Lat, Lon: r.Location.Lon},
			MSRP:         r.MSRP,
			BaseCost:     r.BaseCost,
			RiskAversion: r.RiskAversion,
			IsEAF:        r.IsEAF,
		})
	}

	if err := Validate(sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

// MarshalYAML encodes sellers in the catalog file format.
func MarshalYAML(sellers []domain.Seller) ([]byte, error) {
	doc := fileCatalog{Sellers: make([]sellerRecord, 0, len(sellers))}
	for _, s := range sellers {
		r := sellerRecord{
			Name:         s.Name,
			MSRP:         s.MSRP,
			BaseCost:     s.BaseCost,
			RiskAversion: s.RiskAversion,
			IsEAF:        s.IsEAF,
		}
		r.Location.Lat = s.Location.Lat
		r.Location.Lon = s.Location.Lon
		doc.Sellers = append(doc.Sellers, r)
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog yaml: %w", err)
	}
	return b, nil
}

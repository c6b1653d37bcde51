package main

import (
	"context"
	"path/filepath"
	"steel-auction-service/internal/adapters/repositories"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/platform/db"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestSeedCatalog(t *testing.T) {
	nominal, err := seedCatalog("", -1)
	assert.NoError(t, err)
	check.Equal(t, catalog.ReferenceSellers(), nominal)
	for _, s := range nominal {
		if s.IsEAF {
			check.Equal(t, catalog.EAFMSRP, s.MSRP)
		}
	}

	seeded, err := seedCatalog("  ", 42)
	assert.NoError(t, err)
	check.Equal(t, catalog.DefaultSellers(catalog.NewSeededRand(42)), seeded)
}

func TestExportThenSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sellers.yaml")

	sellers := catalog.DefaultSellers(catalog.NewSeededRand(9))
	assert.NoError(t, exportYAML(path, sellers))

	loaded, err := seedCatalog(path, -1)
	assert.NoError(t, err)
	check.Equal(t, sellers, loaded)

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	assert.NoError(t, initAndSeed(ctx, conn, db.SQLite, loaded))

	stored, err := repositories.NewSQLSellerRepository(conn).ListSellers(ctx)
	assert.NoError(t, err)
	check.Equal(t, sellers, stored)

	known, err := repositories.NewSQLAddressBook(conn, db.SQLite).ListAddresses(ctx)
	assert.NoError(t, err)
	check.Equal(t, []string{"central us warehouse", "chicago, il", "pittsburgh, pa"}, known)
}

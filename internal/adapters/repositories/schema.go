package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/db"
	"strings"
)

// InitSchema creates the seller catalog and address book tables.
// The DDL is portable between Postgres and SQLite.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSellersQuery := `
	CREATE TABLE IF NOT EXISTS sellers (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		msrp DOUBLE PRECISION NOT NULL CHECK (msrp > 0),
		base_cost DOUBLE PRECISION NOT NULL CHECK (base_cost > 0),
		risk_aversion DOUBLE PRECISION NOT NULL CHECK (risk_aversion BETWEEN 1.0 AND 1.5),
		is_eaf BOOLEAN NOT NULL
	);
	`

	createAddressBookQuery := `
	CREATE TABLE IF NOT EXISTS address_book (
		address TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180)
	);
	`

	statements := []string{
		createSellersQuery,
		createAddressBookQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedSellers replaces the stored catalog with sellers, keeping their order.
func SeedSellers(ctx context.Context, conn *sql.DB, dialect db.Dialect, sellers []domain.Seller) error {
	if conn == nil {
		return errors.New("seed sellers: DB is nil")
	}

	for i, s := range sellers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("seed sellers: seller at index %d: %w", i+1, err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed sellers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sellers;`); err != nil {
		return fmt.Errorf("seed sellers: clear table: %w", err)
	}

	ph := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		ph = append(ph, dialect.Placeholder(i))
	}

	query := fmt.Sprintf(`
	INSERT INTO sellers (
		position,
		name,
		lat,
		lon,
		msrp,
		base_cost,
		risk_aversion,
		is_eaf
	)
	VALUES (%s);
	`, strings.Join(ph, ", "))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed sellers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range sellers {
		_, err := stmt.ExecContext(ctx,
			i+1,
			strings.TrimSpace(s.Name),
			s.Location.Lat,
			s.Location.Lon,
			s.MSRP,
			s.BaseCost,
			s.RiskAversion,
			s.IsEAF,
		)
		if err != nil {
			return fmt.Errorf("seed sellers: insert name=%q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed sellers: commit tx: %w", err)
	}

	return nil
}

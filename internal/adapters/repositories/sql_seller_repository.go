package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
)

// database/sql implementation of the SellerCatalog port.
// The query is plain SQL and runs unchanged on Postgres and SQLite.
type SQLSellerRepository struct{ DB *sql.DB }

func NewSQLSellerRepository(db *sql.DB) *SQLSellerRepository {
	return &SQLSellerRepository{DB: db}
}

// Return all sellers in catalog order.
func (s *SQLSellerRepository) ListSellers(ctx context.Context) (_ []domain.Seller, err error) {
	defer obs.Time(ctx, "sellers.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql seller repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lon,
		msrp,
		base_cost,
		risk_aversion,
		is_eaf
	FROM sellers
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sellers: query sellers table: %w", err)
	}
	defer rows.Close()

	sellers := make([]domain.Seller, 0, 16)
	for rows.Next() {
		var sl domain.Seller
		err := rows.Scan(
			&sl.Name,
			&sl.Location.Lat,
			&sl.Location.Lon,
			&sl.MSRP,
			&sl.BaseCost,
			&sl.RiskAversion,
			&sl.IsEAF,
		)
		if err != nil {
			return nil, fmt.Errorf("list sellers: scan row: %w", err)
		}
		sellers = append(sellers, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sellers: row iteration: %w", err)
	}

	return sellers, nil
}

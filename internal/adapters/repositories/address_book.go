package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/db"
	"steel-auction-service/internal/platform/obs"
	"strings"
)

// SQLAddressBook serves the address_book table, the stored source of truth
// for buyer address resolution. Keys are normalized by the caller.
type SQLAddressBook struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLAddressBook(conn *sql.DB, dialect db.Dialect) *SQLAddressBook {
	return &SQLAddressBook{DB: conn, Dialect: dialect}
}

// Fetch stored points for the given addresses.
func (b *SQLAddressBook) LookupMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Point, err error) {
	defer obs.Time(ctx, "addressbook.sql.LookupMany")(&err)

	if b.DB == nil {
		return nil, errors.New("address book: DB is nil")
	}

	uniq := uniqueKeys(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Point{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for i, a := range uniq {
		ph = append(ph, b.Dialect.Placeholder(i+1))
		args = append(args, a)
	}

	// Only the placeholder list is interpolated; values stay parameterized.
	q := fmt.Sprintf(`
	SELECT
		address,
		lat,
		lon
	FROM address_book
	WHERE address IN (%s);
	`, strings.Join(ph, ", "))

	rows, err := b.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("lookup addresses: query address_book table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Point, len(uniq))
	for rows.Next() {
		var addr string
		var p domain.Point
		if err := rows.Scan(&addr, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("lookup addresses: scan row: %w", err)
		}
		out[addr] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup addresses: row iteration: %w", err)
	}

	return out, nil
}

// Return every stored address in sorted order.
func (b *SQLAddressBook) ListAddresses(ctx context.Context) ([]string, error) {
	if b.DB == nil {
		return nil, errors.New("address book: DB is nil")
	}

	rows, err := b.DB.QueryContext(ctx, `SELECT address FROM address_book ORDER BY address;`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: query address_book table: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("list addresses: scan row: %w", err)
		}
		out = append(out, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: row iteration: %w", err)
	}

	return out, nil
}

// SeedAddressBook upserts book into the address_book table. Existing entries
// not in book are kept.
func SeedAddressBook(ctx context.Context, conn *sql.DB, dialect db.Dialect, book map[string]domain.Point) error {
	if conn == nil {
		return errors.New("seed address book: DB is nil")
	}

	for addr, p := range book {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("seed address book: %w: empty address key", domain.ErrInvalidInput)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("seed address book: address=%q: %w", addr, err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed address book: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// ON CONFLICT ... DO UPDATE is understood by both Postgres and SQLite.
	query := fmt.Sprintf(`
	INSERT INTO address_book (address, lat, lon)
	VALUES (%s, %s, %s)
	ON CONFLICT (address) DO UPDATE
	SET lat = excluded.lat,
		lon = excluded.lon;
	`, dialect.Placeholder(1), dialect.Placeholder(2), dialect.Placeholder(3))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed address book: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for addr, p := range book {
		if _, err := stmt.ExecContext(ctx, addr, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed address book: upsert address=%q: %w", addr, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed address book: commit tx: %w", err)
	}

	return nil
}

// uniqueKeys trims keys and drops blanks and duplicates, keeping first-seen order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}

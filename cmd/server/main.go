package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"steel-auction-service/internal/adapters/cache"
	"steel-auction-service/internal/adapters/geocode"
	"steel-auction-service/internal/adapters/repositories"
	"steel-auction-service/internal/api"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/config"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/db"
	"steel-auction-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires the seller catalog and resolver chain behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	conn, dialect, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if conn != nil {
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatal(err)
		}
	}

	sellerCatalog, err := buildCatalog(ctx, cfg, conn, dialect)
	if err != nil {
		log.Fatal(err)
	}

	resolver, addresses, closeResolver, err := buildResolver(ctx, cfg, conn, dialect)
	if err != nil {
		log.Fatal(err)
	}
	defer closeResolver()

	router := api.NewRouter(api.Deps{
		Catalog:         sellerCatalog,
		Resolver:        resolver,
		Addresses:       addresses,
		MaxQuantityTons: cfg.MaxQuantityTons,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	log.Printf("Server listening addr=:%s db_driver=%s", cfg.Port, cfg.DBDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(cfg *config.Config) (*sql.DB, db.Dialect, error) {
	switch cfg.DBDriver {
	case config.DriverPgx:
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, db.Postgres, err
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		return conn, db.SQLite, err
	default:
		return nil, "", nil
	}
}

// sourceSellers reads the catalog from SELLERS_PATH when set, otherwise
// builds the jittered default catalog.
func sourceSellers(cfg *config.Config) ([]domain.Seller, error) {
	if cfg.SellersPath != "" {
		return catalog.LoadYAML(cfg.SellersPath)
	}

	var rng catalog.RandSource
	if cfg.CatalogSeed != nil {
		rng = catalog.NewSeededRand(*cfg.CatalogSeed)
	}
	return catalog.DefaultSellers(rng), nil
}

// buildCatalog loads the sellers once at startup. With a database the stored
// catalog is authoritative; an empty sellers table is seeded first so local
// runs work out of the box.
func buildCatalog(ctx context.Context, cfg *config.Config, conn *sql.DB, dialect db.Dialect) (ports.SellerCatalog, error) {
	if conn == nil {
		sellers, err := sourceSellers(cfg)
		if err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		log.Printf("catalog ready: source=memory sellers=%d", len(sellers))
		return repositories.NewMemorySellerRepository(sellers), nil
	}

	repo := repositories.NewSQLSellerRepository(conn)

	stored, err := repo.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	if len(stored) == 0 {
		sellers, err := sourceSellers(cfg)
		if err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		if err := repositories.SeedSellers(ctx, conn, dialect, sellers); err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		log.Printf("catalog seeded: sellers=%d", len(sellers))

		if stored, err = repo.ListSellers(ctx); err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
	} else if cfg.SellersPath != "" {
		log.Printf("catalog: stored sellers in use, SELLERS_PATH=%s ignored (reseed with dbtool)", cfg.SellersPath)
	}

	if err := catalog.Validate(stored); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	// Snapshot once; the catalog is read-only for the life of the process.
	log.Printf("catalog ready: source=%s sellers=%d", dialect, len(stored))
	return repositories.NewMemorySellerRepository(stored), nil
}

// buildResolver returns the buyer address resolver and the directory used for
// 404 hints. Without a database the built-in address book answers directly.
// With one, the address_book table is the source of truth (seeded from the
// built-in book when empty) behind a Redis or in-process cache.
func buildResolver(
	ctx context.Context,
	cfg *config.Config,
	conn *sql.DB,
	dialect db.Dialect,
) (ports.LocationResolver, ports.AddressDirectory, func(), error) {
	if conn == nil {
		static := geocode.NewStaticResolver(geocode.DefaultAddressBook())
		log.Printf("resolver ready: source=static")
		return static, static, func() {}, nil
	}

	book := repositories.NewSQLAddressBook(conn, dialect)

	known, err := book.ListAddresses(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build resolver: %w", err)
	}
	if len(known) == 0 {
		defaults := geocode.NormalizeBook(geocode.DefaultAddressBook())
		if err := repositories.SeedAddressBook(ctx, conn, dialect, defaults); err != nil {
			return nil, nil, nil, fmt.Errorf("build resolver: %w", err)
		}
		log.Printf("address book seeded: addresses=%d", len(defaults))
	}

	bookResolver, err := geocode.NewBookResolver(book)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build resolver: %w", err)
	}

	geocodeCache, closeCache, err := buildGeocodeCache(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build resolver: %w", err)
	}

	resolver, err := geocode.NewCachingResolver(bookResolver, geocodeCache)
	if err != nil {
		closeCache()
		return nil, nil, nil, fmt.Errorf("build resolver: %w", err)
	}

	log.Printf("resolver ready: source=%s", dialect)
	return resolver, bookResolver, closeCache, nil
}

// buildGeocodeCache prefers Redis, shared across instances, over process memory.
func buildGeocodeCache(ctx context.Context, cfg *config.Config) (ports.GeocodeCache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Printf("geocode cache: memory ttl=%s", cfg.GeocodeCacheTTL)
		return cache.NewMemoryGeocodeCache(cfg.GeocodeCacheTTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("build geocode cache: redis ping %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("geocode cache: redis addr=%s ttl=%s", cfg.RedisAddr, cfg.GeocodeCacheTTL)
	return cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL), func() { _ = client.Close() }, nil
}

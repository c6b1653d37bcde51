package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"steel-auction-service/internal/adapters/geocode"
	"steel-auction-service/internal/adapters/repositories"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/config"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/db"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	exportPath := flag.String("export", "", "write the seed catalog as YAML to this path instead of touching the database")
	seed := flag.Int64("seed", -1, "jitter seed for the default catalog (negative: nominal figures)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	sellers, err := seedCatalog(config.Get("SELLERS_PATH", ""), *seed)
	if err != nil {
		log.Fatal(err)
	}

	if *exportPath != "" {
		if err := exportYAML(*exportPath, sellers); err != nil {
			log.Fatal(err)
		}
		log.Printf("Exported %d sellers to %s", len(sellers), *exportPath)
		return
	}

	conn, dialect := openFromEnv()
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, dialect, sellers); err != nil {
		log.Fatal(err)
	}
}

func seedCatalog(sellersPath string, seed int64) ([]domain.Seller, error) {
	if strings.TrimSpace(sellersPath) != "" {
		log.Printf("Loading sellers from %s", sellersPath)
		return catalog.LoadYAML(sellersPath)
	}
	if seed < 0 {
		return catalog.ReferenceSellers(), nil
	}
	return catalog.DefaultSellers(catalog.NewSeededRand(uint64(seed))), nil
}

func exportYAML(path string, sellers []domain.Seller) error {
	data, err := catalog.MarshalYAML(sellers)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func openFromEnv() (*sql.DB, db.Dialect) {
	driver := strings.ToLower(config.Get("DB_DRIVER", config.DriverPgx))

	switch driver {
	case config.DriverPgx:
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		return conn, db.Postgres
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(config.Get("DB_PATH", config.DefaultDBPath))
		if err != nil {
			log.Fatal(err)
		}
		return conn, db.SQLite
	default:
		log.Fatalf("DB_DRIVER must be pgx or sqlite, got %s", strconv.Quote(driver))
		return nil, ""
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, sellers []domain.Seller) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding sellers...")
	if err := repositories.SeedSellers(ctx, conn, dialect, sellers); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. sellers=%d", len(sellers))

	log.Println("Seeding address book...")
	book := geocode.NormalizeBook(geocode.DefaultAddressBook())
	if err := repositories.SeedAddressBook(ctx, conn, dialect, book); err != nil {
		log.Fatalf("address book seeding failed: %v", err)
	}
	log.Printf("Address book ready. addresses=%d", len(book))

	return nil
}

package api

import (
	"net/http"
	"steel-auction-service/internal/api/handlers"
	"steel-auction-service/internal/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Catalog  ports.SellerCatalog
	Resolver ports.LocationResolver
	// Lists the addresses the resolver answers, echoed on 404s.
	Addresses       ports.AddressDirectory
	MaxQuantityTons float64
	AllowedOrigins  []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	sellerHandler := &handlers.SellerHandler{Catalog: d.Catalog}
	auctionHandler := &handlers.AuctionHandler{
		Catalog:         d.Catalog,
		Resolver:        d.Resolver,
		Addresses:       d.Addresses,
		MaxQuantityTons: d.MaxQuantityTons,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sellers", sellerHandler.List)
	mux.HandleFunc("/auction/run", auctionHandler.Run)
	mux.HandleFunc("/auction/run-by-address", auctionHandler.RunByAddress)

	return requestIDMiddleware(loggingMiddleware(corsMiddleware(d.AllowedOrigins, mux)))
}

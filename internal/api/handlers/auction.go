package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"steel-auction-service/internal/api/dto"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/platform/obs"
	"steel-auction-service/internal/ports"
	"steel-auction-service/internal/services"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type AuctionHandler struct {
	Catalog  ports.SellerCatalog
	Resolver ports.LocationResolver
	// Listed in 404 responses so clients can pick a resolvable address.
	Addresses       ports.AddressDirectory
	MaxQuantityTons float64
}

// Run prices every seller for a JSON request and returns all bids plus the winner.
func (h *AuctionHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AuctionRunRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if (req.Lat == nil) != (req.Lon == nil) {
		writeError(w, r, http.StatusBadRequest, "lat and lon must be provided together")
		return
	}

	if msg := h.checkQuantity(req.QuantityTons); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	sellers, ok := h.listSellers(w, r)
	if !ok {
		return
	}

	var (
		result *domain.AuctionResult
		err    error
	)
	if req.Lat != nil {
		result, err = services.RunAuction(sellers, domain.Point{Lat: *req.Lat, Lon: *req.Lon}, req.QuantityTons)
	} else {
		address := strings.TrimSpace(req.BuyerAddress)
		if address == "" {
			writeError(w, r, http.StatusBadRequest, "buyer_address or lat/lon is required")
			return
		}
		result, err = services.RunAuctionForAddress(r.Context(), sellers, address, h.Resolver, req.QuantityTons)
	}

	h.respond(w, r, result, err)
}

// RunByAddress is the query-string form: ?buyer_address=..&quantity_tons=..
func (h *AuctionHandler) RunByAddress(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	q := r.URL.Query()

	address := strings.TrimSpace(q.Get("buyer_address"))
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "buyer_address is required")
		return
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(q.Get("quantity_tons")), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "quantity_tons must be a number")
		return
	}
	if msg := h.checkQuantity(qty); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	sellers, ok := h.listSellers(w, r)
	if !ok {
		return
	}

	result, err := services.RunAuctionForAddress(r.Context(), sellers, address, h.Resolver, qty)
	h.respond(w, r, result, err)
}

func (h *AuctionHandler) checkQuantity(qty float64) string {
	if err := services.ValidateQuantity(qty); err != nil || qty > h.MaxQuantityTons {
		return fmt.Sprintf("quantity_tons must be > 0 and <= %v", h.MaxQuantityTons)
	}
	return ""
}

func (h *AuctionHandler) listSellers(w http.ResponseWriter, r *http.Request) ([]domain.Seller, bool) {
	sellers, err := h.Catalog.ListSellers(r.Context())
	if err != nil {
		log.Printf("list sellers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return sellers, true
}

func (h *AuctionHandler) respond(w http.ResponseWriter, r *http.Request, result *domain.AuctionResult, err error) {
	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		writeJSON(w, r, http.StatusNotFound, map[string]any{
			"error":           "buyer address could not be resolved",
			"known_addresses": h.knownAddresses(r),
		})
		return
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("run auction failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	auctionID := uuid.NewString()
	log.Printf(
		"auction completed: req_id=%s auction_id=%s winner=%q bids=%d qty=%v",
		obs.RequestID(r.Context()), auctionID, result.Winner.Seller.Name, len(result.Bids), result.Winner.QuantityTons,
	)

	res := dto.AuctionRunResponse{
		AuctionID:     auctionID,
		Winner:        toBidResponse(result.Winner),
		Bids:          make([]dto.BidResponse, 0, len(result.Bids)),
		BuyerLocation: toLocationResponse(result.BuyerLocation),
	}
	for _, b := range result.Bids {
		res.Bids = append(res.Bids, toBidResponse(b))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *AuctionHandler) knownAddresses(r *http.Request) []string {
	if h.Addresses == nil {
		return []string{}
	}

	known, err := h.Addresses.KnownAddresses(r.Context())
	if err != nil {
		log.Printf("list known addresses failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		return []string{}
	}
	return known
}

func toBidResponse(b domain.Bid) dto.BidResponse {
	q := b.Quote
	return dto.BidResponse{
		SellerName:             q.SellerName,
		DistanceKm:             q.DistanceKm,
		TransportMode:          q.TransportMode.String(),
		CostPerTon:             q.CostPerTon,
		RiskBufferPerTon:       q.RiskBufferPerTon,
		OfferPricePerTon:       q.OfferPricePerTon,
		GrossTotalUndiscounted: q.GrossTotalUndiscounted,
		VolumeDiscountPct:      q.VolumeDiscountPct,
		VolumeDiscountTotal:    q.VolumeDiscountTotal,
		GrossTotal:             q.GrossTotal,
		IsEAF:                  q.IsEAF,
		EAFDiscountTotal:       q.EAFDiscountTotal,
		NetTotal:               q.NetTotal,
		NetPricePerTon:         q.NetPricePerTon,
		QuantityTons:           b.QuantityTons,
		TotalNetCost:           b.TotalNetCost(),
	}
}

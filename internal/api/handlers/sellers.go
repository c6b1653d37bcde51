package handlers

import (
	"log"
	"net/http"
	"steel-auction-service/internal/api/dto"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/ports"
)

// SellerHandler exposes the read-only seller catalog.
type SellerHandler struct {
	Catalog ports.SellerCatalog
}

func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	sellers, err := h.Catalog.ListSellers(r.Context())
	if err != nil {
		log.Printf("list sellers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Bare array: clients read GET /sellers as a list.
	res := make([]dto.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		res = append(res, toSellerResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toSellerResponse(s domain.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		Name:         s.Name,
		Location:     toLocationResponse(s.Location),
		MSRP:         s.MSRP,
		BaseCost:     s.BaseCost,
		RiskAversion: s.RiskAversion,
		IsEAF:        s.IsEAF,
	}
}

func toLocationResponse(p domain.Point) dto.LocationResponse {
	return dto.LocationResponse{Lat: p.Lat, Lon: p.Lon}
}

package dto

// AuctionRunRequest locates the buyer either by address or by coordinates.
// When both lat and lon are present they take precedence over the address.
type AuctionRunRequest struct {
	BuyerAddress string   `json:"buyer_address"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	QuantityTons float64  `json:"quantity_tons"`
}

// BidResponse is the flat per-seller record of an auction run.
type BidResponse struct {
	SellerName             string  `json:"seller_name"`
	DistanceKm             float64 `json:"distance_km"`
	TransportMode          string  `json:"transport_mode"`
	CostPerTon             float64 `json:"cost_per_ton"`
	RiskBufferPerTon       float64 `json:"risk_buffer_per_ton"`
	OfferPricePerTon       float64 `json:"offer_price_per_ton"`
	GrossTotalUndiscounted float64 `json:"gross_total_undiscounted"`
	VolumeDiscountPct      float64 `json:"volume_discount_pct"`
	VolumeDiscountTotal    float64 `json:"volume_discount_total"`
	GrossTotal             float64 `json:"gross_total"`
	IsEAF                  bool    `json:"is_eaf"`
	EAFDiscountTotal       float64 `json:"eaf_discount_total"`
	NetTotal               float64 `json:"net_total"`
	NetPricePerTon         float64 `json:"net_price_per_ton"`
	QuantityTons           float64 `json:"quantity_tons"`
	TotalNetCost           float64 `json:"total_net_cost"`
}

type AuctionRunResponse struct {
	AuctionID     string           `json:"auction_id"`
	Winner        BidResponse      `json:"winner"`
	Bids          []BidResponse    `json:"bids"`
	BuyerLocation LocationResponse `json:"buyer_location"`
}

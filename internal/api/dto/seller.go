package dto

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SellerResponse struct {
	Name         string           `json:"name"`
	Location     LocationResponse `json:"location"`
	MSRP         float64          `json:"msrp"`
	BaseCost     float64          `json:"base_cost"`
	RiskAversion float64          `json:"risk_aversion"`
	IsEAF        bool             `json:"is_eaf"`
}

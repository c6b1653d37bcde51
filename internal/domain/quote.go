package domain

// Priced offer of one seller for one (buyer location, quantity) pair.
// A Quote is recomputed on every auction run and never stored.
type Quote struct {
	SellerName             string
	DistanceKm             float64
	TransportMode          TransportMode
	CostPerTon             float64
	RiskBufferPerTon       float64
	OfferPricePerTon       float64
	GrossTotalUndiscounted float64
	VolumeDiscountPct      float64
	VolumeDiscountTotal    float64
	// Gross total after the volume discount.
	GrossTotal       float64
	IsEAF            bool
	EAFDiscountTotal float64
	NetTotal         float64
	NetPricePerTon   float64
}

// A Quote bound to the seller that produced it and the requested quantity.
type Bid struct {
	Seller       Seller
	Quote        Quote
	QuantityTons float64
}

// TotalNetCost is the amount the buyer pays for the whole quantity.
func (b Bid) TotalNetCost() float64 { return b.Quote.NetTotal }

// Outcome of a single auction run.
// Bids keeps the order of the input sellers, not price order.
type AuctionResult struct {
	Winner        Bid
	Bids          []Bid
	BuyerLocation Point
}

package schema

import "github.com/shopspring/decimal"

// prices go over the wire as JSON numbers
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type OfferPrice struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// OfferRequest mirrors the orderbook offer body. Signature is carried but never checked.
type OfferRequest struct {
	Domain    string     `json:"domain"`
	Price     OfferPrice `json:"price"`
	Offerer   string     `json:"offerer"`
	Signature string     `json:"signature,omitempty"`
}

type OfferResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const TotalDomainsLabel = "500,000+"

type MarketStats struct {
	TotalDomains    string `json:"totalDomains"`
	TrendingTLD     string `json:"trendingTld"`
	LiveListings    int    `json:"liveListings"`
	Transactions24h int64  `json:"transactions24h"`
}

type DashboardView struct {
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Loading  bool           `json:"loading"`
	HasMore  bool           `json:"hasMore"`
	Search   string         `json:"search"`
	Total    int            `json:"total"` // domains on the page before filtering
	Domains  []DomainRecord `json:"domains"`
	Stats    MarketStats    `json:"stats"`
}

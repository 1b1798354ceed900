package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

type DomainStatus string

const (
	StatusTrading DomainStatus = "Trading"
	StatusOwned   DomainStatus = "Owned"
)

const (
	NullOwner  = "N/A"
	UnknownTLD = "..."
)

// DomainRecord is one row of the domain grid. Status and LastTradePrice are
// synthesized on every fetch, the registry does not provide them.
type DomainRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Owner          string          `json:"owner"`
	TLD            string          `json:"tld"`
	Status         DomainStatus    `json:"status"`
	LastTradePrice decimal.Decimal `json:"lastTradePrice"`
}

type PaginatedDomains struct {
	Domains []DomainRecord `json:"domains"`
	HasMore bool           `json:"hasMore"`
}

type LiveEventType string

const (
	LiveEventListed      LiveEventType = "listed"
	LiveEventSold        LiveEventType = "sold"
	LiveEventTransferred LiveEventType = "transferred"
)

var LiveEventTypes = []LiveEventType{LiveEventListed, LiveEventSold, LiveEventTransferred}

type LiveEvent struct {
	ID        string           `json:"id"`
	Type      LiveEventType    `json:"type"`
	Domain    string           `json:"domain"`
	Price     *decimal.Decimal `json:"price,omitempty"` // sold only
	Timestamp time.Time        `json:"timestamp"`
}

type HistoryEventType string

const (
	HistoryMinted      HistoryEventType = "Minted"
	HistoryListed      HistoryEventType = "Listed"
	HistorySold        HistoryEventType = "Sold"
	HistoryTransferred HistoryEventType = "Transferred"
)

const MarketplaceAddress = "Marketplace"

type HistoryEvent struct {
	ID        string           `json:"id"`
	Type      HistoryEventType `json:"type"`
	Price     *decimal.Decimal `json:"price,omitempty"` // ETH, Sold only
	From      string           `json:"from"`
	To        string           `json:"to"`
	Timestamp time.Time        `json:"timestamp"`
}

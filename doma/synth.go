package doma

import (
	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
	"github.com/shopspring/decimal"
)

// Synthesizer fills the fields the registry does not serve.
type Synthesizer interface {
	Status() schema.DomainStatus
	LastTradePrice() decimal.Decimal
}

type RandSynthesizer struct {
	rnd common.Rand
}

func NewRandSynthesizer(rnd common.Rand) *RandSynthesizer {
	return &RandSynthesizer{rnd: rnd}
}

func (s *RandSynthesizer) Status() schema.DomainStatus {
	if s.rnd.Float64() > 0.5 {
		return schema.StatusTrading
	}
	return schema.StatusOwned
}

// LastTradePrice is a whole number in [100, 5100).
func (s *RandSynthesizer) LastTradePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(s.rnd.Float64()*5000) + 100)
}

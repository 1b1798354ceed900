package market

import (
	"context"
	"fmt"
	"time"

	"github.com/domalens/domalens/schema"
)

const DefaultOfferDelay = 1500 * time.Millisecond

// OfferBook accepts offers without signing or submitting them anywhere.
type OfferBook struct {
	delay time.Duration
}

func NewOfferBook(delay time.Duration) *OfferBook {
	return &OfferBook{delay: delay}
}

func (o *OfferBook) SubmitOffer(ctx context.Context, req schema.OfferRequest) schema.OfferResult {
	if !req.Price.Amount.IsPositive() {
		return schema.OfferResult{Success: false, Message: "Offer price must be greater than zero."}
	}

	if !wait(ctx, o.delay) {
		log.Warn("offer cancelled", "domain", req.Domain, "offerer", req.Offerer)
		return schema.OfferResult{Success: false, Message: fmt.Sprintf("Offer for %s was not submitted: %s", req.Domain, schema.ErrOfferTimeout)}
	}

	log.Info("offer accepted", "domain", req.Domain, "amount", req.Price.Amount.String(), "currency", req.Price.Currency, "offerer", req.Offerer)
	return schema.OfferResult{
		Success: true,
		Message: fmt.Sprintf("Offer of %s %s for %s submitted successfully.", req.Price.Amount.String(), req.Price.Currency, req.Domain),
	}
}

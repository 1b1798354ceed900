package market

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const (
	DefaultHistoryDelay = 800 * time.Millisecond

	mintWindow     = 30 * 24 * time.Hour
	minExtraEvents = 1
	maxExtraEvents = 5
)

var historyEventTypes = []schema.HistoryEventType{schema.HistorySold, schema.HistoryListed, schema.HistoryTransferred}

type HistoryGenerator struct {
	delay time.Duration
	rnd   common.Rand
	now   func() time.Time
}

func NewHistoryGenerator(delay time.Duration, rnd common.Rand) *HistoryGenerator {
	return &HistoryGenerator{delay: delay, rnd: rnd, now: time.Now}
}

// FetchHistory stands in for the registry's missing history endpoint. Every
// call invents a new history: one mint within the past 30 days followed by
// 1-5 later events, returned newest first.
func (g *HistoryGenerator) FetchHistory(ctx context.Context, domain string) []schema.HistoryEvent {
	if !wait(ctx, g.delay) {
		log.Debug("history request cancelled", "domain", domain)
		return []schema.HistoryEvent{}
	}

	now := g.now()
	ts := now.Add(-time.Hour - time.Duration(g.rnd.Int63n(int64(mintWindow-time.Hour))))
	lastOwner := g.randomAddress()
	events := []schema.HistoryEvent{{
		ID:        fmt.Sprintf("%s-0", domain),
		Type:      schema.HistoryMinted,
		From:      ethcommon.Address{}.Hex(),
		To:        lastOwner,
		Timestamp: ts,
	}}

	n := minExtraEvents + g.rnd.Intn(maxExtraEvents-minExtraEvents+1)
	for i := 1; i <= n; i++ {
		ts = g.after(ts, now, n-i+1)
		ev := schema.HistoryEvent{
			ID:        fmt.Sprintf("%s-%d", domain, i),
			Type:      historyEventTypes[g.rnd.Intn(len(historyEventTypes))],
			From:      lastOwner,
			Timestamp: ts,
		}
		switch ev.Type {
		case schema.HistoryListed:
			ev.To = schema.MarketplaceAddress
		case schema.HistorySold:
			price := decimal.NewFromFloat(g.rnd.Float64() * 10).Truncate(4)
			ev.Price = &price
			fallthrough
		default:
			ev.To = g.randomAddress()
			lastOwner = ev.To
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

// after picks a time strictly after prev and no later than now, leaving room
// for the remaining events.
func (g *HistoryGenerator) after(prev, now time.Time, remaining int) time.Time {
	span := now.Sub(prev) / time.Duration(remaining)
	if span <= time.Nanosecond {
		return prev.Add(time.Nanosecond)
	}
	return prev.Add(time.Nanosecond + time.Duration(g.rnd.Int63n(int64(span))))
}

func (g *HistoryGenerator) randomAddress() string {
	var b [ethcommon.AddressLength]byte
	for i := range b {
		b[i] = byte(g.rnd.Intn(256))
	}
	return ethcommon.BytesToAddress(b[:]).Hex()
}

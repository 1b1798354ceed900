// Package market simulates the orderbook-facing features the registry does not
// serve yet: per-domain event history and offer submission.
package market

import (
	"context"
	"time"

	"github.com/domalens/domalens/common"
)

var log = common.NewLog("market")

// wait emulates network latency. It reports false if ctx ended first.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

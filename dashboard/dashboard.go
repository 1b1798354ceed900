// Package dashboard holds the view model behind the domain grid: the current
// page, its records, the search term and the statistics derived from them.
package dashboard

import (
	"context"
	"sync"

	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
)

var log = common.NewLog("dashboard")

const DefaultPageSize = 50

type DomainSource interface {
	FetchPage(ctx context.Context, page, pageSize int) schema.PaginatedDomains
}

type Dashboard struct {
	source   DomainSource
	pageSize int

	lock    sync.RWMutex
	page    int
	domains []schema.DomainRecord
	loading bool
	hasMore bool
	search  string
	seq     uint64 // bumped on every page change; stale fetches compare against it
}

func New(source DomainSource, pageSize int) *Dashboard {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Dashboard{
		source:   source,
		pageSize: pageSize,
		page:     1,
		domains:  []schema.DomainRecord{},
		hasMore:  true,
	}
}

// Load (re)fetches the current page.
func (d *Dashboard) Load(ctx context.Context) {
	d.lock.Lock()
	page, seq := d.begin(d.page)
	d.lock.Unlock()
	d.fetch(ctx, page, seq)
}

// GoTo switches to page and fetches it.
func (d *Dashboard) GoTo(ctx context.Context, page int) error {
	if page < 1 {
		return schema.ErrInvalidPage
	}
	d.lock.Lock()
	page, seq := d.begin(page)
	d.lock.Unlock()
	d.fetch(ctx, page, seq)
	return nil
}

// Next advances one page if the current page reported more and nothing is
// loading. It reports whether a fetch happened.
func (d *Dashboard) Next(ctx context.Context) bool {
	d.lock.Lock()
	if !d.hasMore || d.loading {
		d.lock.Unlock()
		return false
	}
	page, seq := d.begin(d.page + 1)
	d.lock.Unlock()
	d.fetch(ctx, page, seq)
	return true
}

// Prev goes back one page unless already on the first page or loading.
func (d *Dashboard) Prev(ctx context.Context) bool {
	d.lock.Lock()
	if d.page <= 1 || d.loading {
		d.lock.Unlock()
		return false
	}
	page, seq := d.begin(d.page - 1)
	d.lock.Unlock()
	d.fetch(ctx, page, seq)
	return true
}

// begin must be called with the lock held.
func (d *Dashboard) begin(page int) (int, uint64) {
	d.seq++
	d.page = page
	d.loading = true
	return page, d.seq
}

// fetch ignores caller cancellation, the page is shared by every viewer.
func (d *Dashboard) fetch(ctx context.Context, page int, seq uint64) {
	res := d.source.FetchPage(context.WithoutCancel(ctx), page, d.pageSize)

	d.lock.Lock()
	defer d.lock.Unlock()
	if seq != d.seq {
		log.Debug("discard stale page", "page", page, "current", d.page)
		return
	}
	d.domains = res.Domains
	d.hasMore = res.HasMore
	d.loading = false
}

func (d *Dashboard) SetSearch(term string) {
	d.lock.Lock()
	d.search = term
	d.lock.Unlock()
}

func (d *Dashboard) Page() int {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.page
}

func (d *Dashboard) PageSize() int {
	return d.pageSize
}

// View derives the filtered records and per-page statistics. Transactions24h
// is left to the caller, it is not page data.
func (d *Dashboard) View() schema.DashboardView {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return schema.DashboardView{
		Page:     d.page,
		PageSize: d.pageSize,
		Loading:  d.loading,
		HasMore:  d.hasMore,
		Search:   d.search,
		Total:    len(d.domains),
		Domains:  Filter(d.domains, d.search),
		Stats:    Stats(d.domains),
	}
}

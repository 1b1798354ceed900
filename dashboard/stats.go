package dashboard

import (
	"github.com/domalens/domalens/schema"
)

// Stats covers the given page only.
func Stats(domains []schema.DomainRecord) schema.MarketStats {
	return schema.MarketStats{
		TotalDomains: schema.TotalDomainsLabel,
		TrendingTLD:  TrendingTLD(domains),
		LiveListings: LiveListings(domains),
	}
}

// TrendingTLD returns the most frequent TLD; on a tie the one seen first wins.
func TrendingTLD(domains []schema.DomainRecord) string {
	if len(domains) == 0 {
		return schema.UnknownTLD
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, d := range domains {
		if _, ok := counts[d.TLD]; !ok {
			order = append(order, d.TLD)
		}
		counts[d.TLD]++
	}
	best := order[0]
	for _, tld := range order[1:] {
		if counts[tld] > counts[best] {
			best = tld
		}
	}
	return best
}

func LiveListings(domains []schema.DomainRecord) int {
	n := 0
	for _, d := range domains {
		if d.Status == schema.StatusTrading {
			n++
		}
	}
	return n
}

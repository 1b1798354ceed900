package dashboard

import (
	"strings"

	"github.com/domalens/domalens/schema"
)

// Filter keeps the records whose name, owner or TLD contains term, ignoring
// case. An empty term returns domains itself.
func Filter(domains []schema.DomainRecord, term string) []schema.DomainRecord {
	if term == "" {
		return domains
	}
	term = strings.ToLower(term)
	res := make([]schema.DomainRecord, 0, len(domains))
	for _, d := range domains {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Owner), term) ||
			strings.Contains(strings.ToLower(d.TLD), term) {
			res = append(res, d)
		}
	}
	return res
}

package doma

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
)

var log = common.NewLog("doma")

const apiKeyHeader = "Api-Key"

type Client struct {
	GQL   graphql.Client
	synth Synthesizer
}

// NewClient queries endpoint with apiKey sent on every request.
func NewClient(endpoint, apiKey string, timeout time.Duration, synth Synthesizer) *Client {
	doer := &apiKeyDoer{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
	return &Client{
		GQL:   graphql.NewClient(endpoint, doer),
		synth: synth,
	}
}

// FetchPage returns page (1-based) of the registry. Failures are logged and
// degrade to an empty page; no error crosses this call.
func (c *Client) FetchPage(ctx context.Context, page, pageSize int) schema.PaginatedDomains {
	empty := schema.PaginatedDomains{Domains: []schema.DomainRecord{}, HasMore: false}
	if page < 1 || pageSize < 1 {
		log.Warn("invalid page request", "page", page, "pageSize", pageSize)
		return empty
	}

	skip := Offset(page, pageSize)
	resp, err := GetPaginatedDomainList(ctx, c.GQL, skip, pageSize)
	if err != nil {
		log.Error("GraphQL fetch page error", "page", page, "err", err)
		return empty
	}

	items := resp.Names.Items
	domains := make([]schema.DomainRecord, 0, len(items))
	for _, item := range items {
		domains = append(domains, c.toRecord(item))
	}
	return schema.PaginatedDomains{
		Domains: domains,
		HasMore: len(items) == pageSize,
	}
}

func (c *Client) toRecord(item GetPaginatedDomainListNamesPaginatedNamesResponseItemsNameModel) schema.DomainRecord {
	owner := schema.NullOwner
	if len(item.Tokens) > 0 && item.Tokens[0].OwnerAddress != "" {
		owner = item.Tokens[0].OwnerAddress
	}
	return schema.DomainRecord{
		ID:             item.Name,
		Name:           item.Name,
		Owner:          owner,
		TLD:            TLD(item.Name),
		Status:         c.synth.Status(),
		LastTradePrice: c.synth.LastTradePrice(),
	}
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TLD returns the suffix after the last dot with a leading dot, e.g. "art.eth" -> ".eth".
// A name without a dot is its own TLD.
func TLD(name string) string {
	return "." + name[strings.LastIndex(name, ".")+1:]
}

type apiKeyDoer struct {
	apiKey string
	client *http.Client
}

func (d *apiKeyDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set(apiKeyHeader, d.apiKey)
	return d.client.Do(req)
}

package doma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/domalens/domalens/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSynth struct{}

func (fixedSynth) Status() schema.DomainStatus      { return schema.StatusTrading }
func (fixedSynth) LastTradePrice() decimal.Decimal { return decimal.NewFromInt(1234) }

type gqlRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
	Variables     struct {
		Skip int `json:"skip"`
		Take int `json:"take"`
	} `json:"variables"`
}

type item struct {
	Name   string              `json:"name"`
	Tokens []map[string]string `json:"tokens"`
}

// registry serves total names "name-<i>.<tld>" and records every request.
type registry struct {
	total int
	mu    sync.Mutex
	reqs  []gqlRequest
	keys  []string
}

func (r *registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var body gqlRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.mu.Lock()
	r.reqs = append(r.reqs, body)
	r.keys = append(r.keys, req.Header.Get("Api-Key"))
	r.mu.Unlock()

	items := make([]item, 0)
	for i := body.Variables.Skip; i < body.Variables.Skip+body.Variables.Take && i < r.total; i++ {
		tld := "eth"
		if i%3 == 0 {
			tld = "xyz"
		}
		it := item{Name: fmt.Sprintf("name-%d.%s", i, tld)}
		if i%2 == 0 {
			it.Tokens = []map[string]string{{"ownerAddress": fmt.Sprintf("0xowner%d", i)}}
		}
		items = append(items, it)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{"names": map[string]any{"items": items}},
	})
}

func newTestClient(url string) *Client {
	return NewClient(url, "test-key", 5*time.Second, fixedSynth{})
}

func TestFetchPage(t *testing.T) {
	reg := &registry{total: 25}
	srv := httptest.NewServer(reg)
	defer srv.Close()
	c := newTestClient(srv.URL)

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantLen  int
		wantMore bool
		wantSkip int
	}{
		{name: "first page", page: 1, pageSize: 10, wantLen: 10, wantMore: true, wantSkip: 0},
		{name: "second page", page: 2, pageSize: 10, wantLen: 10, wantMore: true, wantSkip: 10},
		{name: "short last page", page: 3, pageSize: 10, wantLen: 5, wantMore: false, wantSkip: 20},
		{name: "past the end", page: 4, pageSize: 10, wantLen: 0, wantMore: false, wantSkip: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.FetchPage(context.Background(), tt.page, tt.pageSize)
			assert.Len(t, res.Domains, tt.wantLen)
			assert.LessOrEqual(t, len(res.Domains), tt.pageSize)
			assert.Equal(t, tt.wantMore, res.HasMore)

			reg.mu.Lock()
			last := reg.reqs[len(reg.reqs)-1]
			key := reg.keys[len(reg.keys)-1]
			reg.mu.Unlock()
			assert.Equal(t, tt.wantSkip, last.Variables.Skip)
			assert.Equal(t, tt.pageSize, last.Variables.Take)
			assert.Equal(t, "GetPaginatedDomainList", last.OperationName)
			assert.Equal(t, "test-key", key)
		})
	}
}

func TestFetchPageMapping(t *testing.T) {
	srv := httptest.NewServer(&registry{total: 2})
	defer srv.Close()
	c := newTestClient(srv.URL)

	res := c.FetchPage(context.Background(), 1, 5)
	require.Len(t, res.Domains, 2)

	first := res.Domains[0]
	assert.Equal(t, "name-0.xyz", first.ID)
	assert.Equal(t, "name-0.xyz", first.Name)
	assert.Equal(t, ".xyz", first.TLD)
	assert.Equal(t, "0xowner0", first.Owner)
	assert.Equal(t, schema.StatusTrading, first.Status)
	assert.True(t, decimal.NewFromInt(1234).Equal(first.LastTradePrice))

	second := res.Domains[1]
	assert.Equal(t, ".eth", second.TLD)
	assert.Equal(t, schema.NullOwner, second.Owner)
}

func TestFetchPageExactMultiple(t *testing.T) {
	srv := httptest.NewServer(&registry{total: 20})
	defer srv.Close()
	c := newTestClient(srv.URL)

	res := c.FetchPage(context.Background(), 2, 10)
	assert.Len(t, res.Domains, 10)
	assert.True(t, res.HasMore)

	res = c.FetchPage(context.Background(), 3, 10)
	assert.Empty(t, res.Domains)
	assert.NotNil(t, res.Domains)
	assert.False(t, res.HasMore)
}

func TestFetchPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := newTestClient(srv.URL)

	res := c.FetchPage(context.Background(), 1, 50)
	assert.Empty(t, res.Domains)
	assert.False(t, res.HasMore)
}

func TestFetchPageGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid api key"}]}`))
	}))
	defer srv.Close()
	c := newTestClient(srv.URL)

	res := c.FetchPage(context.Background(), 1, 50)
	assert.Empty(t, res.Domains)
	assert.False(t, res.HasMore)
}

func TestFetchPageUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := newTestClient(url).FetchPage(context.Background(), 1, 50)
	assert.Empty(t, res.Domains)
	assert.False(t, res.HasMore)
}

func TestFetchPageInvalidInput(t *testing.T) {
	reg := &registry{total: 10}
	srv := httptest.NewServer(reg)
	defer srv.Close()
	c := newTestClient(srv.URL)

	assert.Empty(t, c.FetchPage(context.Background(), 0, 10).Domains)
	assert.Empty(t, c.FetchPage(context.Background(), 1, 0).Domains)
	assert.Empty(t, reg.reqs)
}

func TestOffset(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for _, size := range []int{1, 10, 50} {
			assert.Equal(t, (page-1)*size, Offset(page, size))
		}
	}
}

func TestTLD(t *testing.T) {
	assert.Equal(t, ".eth", TLD("art.eth"))
	assert.Equal(t, ".base", TLD("market.sub.base"))
	assert.Equal(t, ".localhost", TLD("localhost"))
	assert.Equal(t, ".", TLD("trailing."))
}

type seqRand struct{ vals []float64 }

func (s *seqRand) Float64() float64 {
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}
func (s *seqRand) Intn(n int) int       { return 0 }
func (s *seqRand) Int63n(n int64) int64 { return 0 }

func TestRandSynthesizer(t *testing.T) {
	s := NewRandSynthesizer(&seqRand{vals: []float64{0.9, 0.1, 0.0, 0.99999}})
	assert.Equal(t, schema.StatusTrading, s.Status())
	assert.Equal(t, schema.StatusOwned, s.Status())
	assert.True(t, decimal.NewFromInt(100).Equal(s.LastTradePrice()))
	assert.True(t, decimal.NewFromInt(5099).Equal(s.LastTradePrice()))
}

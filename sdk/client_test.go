package sdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/domalens/domalens/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, code int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/dashboard/page/2", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		writeJSON(w, http.StatusOK, schema.DashboardView{Page: 2, PageSize: 50, HasMore: true})
	})
	mux.HandleFunc("/dashboard/page/0", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, schema.RespErr{Err: schema.ErrInvalidPage.Error()})
	})
	mux.HandleFunc("/dashboard/search", func(w http.ResponseWriter, r *http.Request) {
		req := schema.ReqSearch{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusOK, schema.DashboardView{Page: 1, Search: req.Term})
	})
	mux.HandleFunc("/domains", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		writeJSON(w, http.StatusOK, schema.PaginatedDomains{
			Domains: []schema.DomainRecord{{ID: "a.eth", Name: "a.eth", TLD: ".eth"}},
		})
	})
	mux.HandleFunc("/offer", func(w http.ResponseWriter, r *http.Request) {
		req := schema.OfferRequest{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.5", req.Price.Amount.String())
		writeJSON(w, http.StatusOK, schema.OfferResult{Success: true, Message: "ok " + req.Domain})
	})
	mux.HandleFunc("/history/art.eth", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schema.RespHistory{Domain: "art.eth", Events: []schema.HistoryEvent{{ID: "1", Type: schema.HistoryMinted}}})
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoTo(t *testing.T) {
	cli := New(newServer(t).URL)

	view, err := cli.GoTo(2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
	assert.True(t, view.HasMore)

	_, err = cli.GoTo(0)
	require.Error(t, err)
	assert.Equal(t, schema.ErrInvalidPage.Error(), err.Error())
	assert.IsType(t, schema.RespErr{}, err)
}

func TestSearch(t *testing.T) {
	cli := New(newServer(t).URL)
	view, err := cli.Search("web3")
	require.NoError(t, err)
	assert.Equal(t, "web3", view.Search)
}

func TestGetPage(t *testing.T) {
	cli := New(newServer(t).URL)
	res, err := cli.GetPage(3, 20)
	require.NoError(t, err)
	require.Len(t, res.Domains, 1)
	assert.Equal(t, ".eth", res.Domains[0].TLD)
}

func TestSubmitOffer(t *testing.T) {
	cli := New(newServer(t).URL)
	amount, err := decimal.NewFromString("2.5")
	require.NoError(t, err)
	res, err := cli.SubmitOffer("art.eth", amount, "ETH", "0xabc")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "ok art.eth", res.Message)
}

func TestGetHistory(t *testing.T) {
	cli := New(newServer(t).URL)
	events, err := cli.GetHistory("art.eth")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schema.HistoryMinted, events[0].Type)
}

func TestSendFailure(t *testing.T) {
	srv := newServer(t)
	cli := New(srv.URL)
	req := cli.SCli.Get()
	req.Path("/broken")
	err := send(req, &struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	_, err = New("http://127.0.0.1:1").GetStats()
	assert.Error(t, err)
}

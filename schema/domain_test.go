package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricesMarshalAsNumbers(t *testing.T) {
	rec := DomainRecord{ID: "art.eth", Name: "art.eth", Owner: NullOwner, TLD: ".eth", Status: StatusOwned, LastTradePrice: decimal.NewFromInt(1234)}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"art.eth","name":"art.eth","owner":"N/A","tld":".eth","status":"Owned","lastTradePrice":1234}`, string(raw))

	price := decimal.RequireFromString("3.14")
	ev := LiveEvent{ID: "1", Type: LiveEventSold, Domain: "art.eth", Price: &price, Timestamp: time.Unix(0, 0).UTC()}
	raw, err = json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":3.14`)

	// both forms decode
	back := LiveEvent{}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"2.5"}`), &back))
	assert.Equal(t, "2.5", back.Price.String())
	require.NoError(t, json.Unmarshal([]byte(`{"price":2.5}`), &back))
	assert.Equal(t, "2.5", back.Price.String())
}

func TestPriceOmittedUnlessSold(t *testing.T) {
	raw, err := json.Marshal(LiveEvent{ID: "1", Type: LiveEventListed, Domain: "art.eth"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "price")
}

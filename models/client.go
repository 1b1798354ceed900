package models

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/domalens/domalens/cache"
	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
	"github.com/panjf2000/ants/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/timeout"
)

var log = common.NewLog("models")

const (
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute
	DefaultWorkers  = 10
)

type Client struct {
	endpoints schema.Models
	demos     []schema.ModelDemo
	cli       *gentleman.Client
	cache     *cache.Cache
	pool      *ants.Pool
}

func New(endpoints schema.Models, demos []schema.ModelDemo) (*Client, error) {
	if endpoints.Timeout <= 0 {
		endpoints.Timeout = DefaultTimeout
	}
	if endpoints.CacheTTL <= 0 {
		endpoints.CacheTTL = DefaultCacheTTL
	}
	if endpoints.Workers <= 0 {
		endpoints.Workers = DefaultWorkers
	}
	if len(demos) == 0 {
		demos = DefaultDemos()
	}

	localCache, err := cache.NewLocalCache(endpoints.CacheTTL)
	if err != nil {
		return nil, err
	}
	pool, err := ants.NewPool(endpoints.Workers)
	if err != nil {
		localCache.Close()
		return nil, err
	}

	cli := gentleman.New()
	cli.Use(timeout.Request(endpoints.Timeout))
	return &Client{
		endpoints: endpoints,
		demos:     demos,
		cli:       cli,
		cache:     localCache,
		pool:      pool,
	}, nil
}

func (c *Client) Demos() []schema.ModelDemo {
	return c.demos
}

func (c *Client) Close() {
	c.pool.Release()
	if err := c.cache.Close(); err != nil {
		log.Warn("close model cache", "err", err)
	}
}

// FetchScores queries all five models concurrently. A model that fails or
// answers without the expected field leaves its score nil.
func (c *Client) FetchScores(ctx context.Context, domain string) schema.ModelScores {
	var (
		wg                                          sync.WaitGroup
		rarity, price, outlier, trends, network []byte
	)
	calls := []struct {
		name string
		out  *[]byte
		fn   func() ([]byte, error)
	}{
		{ModelRarity, &rarity, func() ([]byte, error) { return c.queryDomainModel(ctx, c.endpoints.Rarity, domain) }},
		{ModelPrice, &price, func() ([]byte, error) { return c.queryDomainModel(ctx, c.endpoints.Price, domain) }},
		{ModelOutlier, &outlier, func() ([]byte, error) { return c.queryDomainModel(ctx, c.endpoints.Outlier, domain) }},
		{ModelTrends, &trends, func() ([]byte, error) { return c.queryGlobalModel(ctx, ModelTrends, c.endpoints.Trends) }},
		{ModelNetwork, &network, func() ([]byte, error) { return c.queryGlobalModel(ctx, ModelNetwork, c.endpoints.Network) }},
	}

	for _, call := range calls {
		call := call
		wg.Add(1)
		err := c.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			body, err := call.fn()
			if err != nil && ctx.Err() != nil {
				log.Warn("model query cancelled", "model", call.name, "domain", domain, "err", err)
				return
			}
			if err != nil {
				log.Error("query model failed", "model", call.name, "domain", domain, "err", err)
				metricModelRequest(call.name, false)
				return
			}
			metricModelRequest(call.name, true)
			*call.out = body
		})
		if err != nil {
			wg.Done()
			log.Error("submit model query", "model", call.name, "err", err)
		}
	}
	wg.Wait()

	return schema.ModelScores{
		Rarity:           roundedNumber(rarity, "predicted_rarity_score"),
		PredictedPrice:   stringField(price, "predicted_market_price_usd"),
		IsOutlier:        outlierFlag(outlier),
		TrendScore:       trendScore(trends, domain),
		NetworkInfluence: networkInfluence(network, domain),
	}
}

func (c *Client) queryDomainModel(ctx context.Context, url, domain string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("endpoint not configured")
	}
	req := c.cli.Request()
	req.Context.SetCancelContext(ctx)
	req.URL(url)
	req.Method("POST")
	req.JSON(map[string]string{"domain": domain})
	return send(req)
}

// global models do not depend on the domain, their answers are cached
func (c *Client) queryGlobalModel(ctx context.Context, name, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("endpoint not configured")
	}
	return c.cache.Load(name, func() ([]byte, error) {
		req := c.cli.Request()
		req.Context.SetCancelContext(ctx)
		req.URL(url)
		req.Method("GET")
		return send(req)
	})
}

func send(req *gentleman.Request) ([]byte, error) {
	resp, err := req.Send()
	if err != nil {
		return nil, err
	}
	defer resp.Close()
	if !resp.Ok {
		return nil, fmt.Errorf("resp failed: %d %s", resp.StatusCode, resp.String())
	}
	body := resp.Bytes()
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid json response")
	}
	return body, nil
}

func roundedNumber(body []byte, path string) *int {
	if body == nil {
		return nil
	}
	res := gjson.GetBytes(body, path)
	if res.Type != gjson.Number {
		return nil
	}
	return round(res.Float())
}

func stringField(body []byte, path string) *string {
	if body == nil {
		return nil
	}
	res := gjson.GetBytes(body, path)
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	s := res.String()
	return &s
}

func outlierFlag(body []byte) *bool {
	if body == nil {
		return nil
	}
	flag := strings.Contains(gjson.GetBytes(body, "status").String(), "Outlier")
	return &flag
}

// trendScore looks up the hype index of the domain's TLD, keyed without the dot.
func trendScore(body []byte, domain string) *int {
	if body == nil {
		return nil
	}
	tld := domain[strings.LastIndex(domain, ".")+1:]
	res, ok := gjson.ParseBytes(body).Map()[tld]
	if !ok || res.Type != gjson.Number {
		return nil
	}
	return round(res.Float())
}

func networkInfluence(body []byte, domain string) *int {
	if body == nil {
		return nil
	}
	var score *int
	gjson.GetBytes(body, "top_domains").ForEach(func(_, item gjson.Result) bool {
		fields := item.Map()
		if fields["Domain"].String() != domain {
			return true
		}
		if v, ok := fields["Centrality Score"]; ok && v.Type == gjson.Number {
			score = round(v.Float())
		}
		return false
	})
	return score
}

// round matches half-up rounding; zero counts as no score.
func round(f float64) *int {
	if f == 0 || math.IsNaN(f) {
		return nil
	}
	v := int(math.Floor(f + 0.5))
	return &v
}

package sdk

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/domalens/domalens/schema"
	"github.com/shopspring/decimal"
	"gopkg.in/h2non/gentleman.v2"
)

// DomalensCli talks to a running domalens api server.
type DomalensCli struct {
	SCli *gentleman.Client
}

func New(domalensUrl string) *DomalensCli {
	return &DomalensCli{
		SCli: gentleman.New().URL(domalensUrl),
	}
}

// dashboard

func (d *DomalensCli) GetDashboard() (schema.DashboardView, error) {
	req := d.SCli.Get()
	req.Path("/dashboard")
	view := schema.DashboardView{}
	err := send(req, &view)
	return view, err
}

func (d *DomalensCli) Next() (schema.DashboardView, error) {
	return d.navigate("/dashboard/next")
}

func (d *DomalensCli) Prev() (schema.DashboardView, error) {
	return d.navigate("/dashboard/prev")
}

func (d *DomalensCli) GoTo(page int) (schema.DashboardView, error) {
	return d.navigate("/dashboard/page/" + strconv.Itoa(page))
}

func (d *DomalensCli) navigate(path string) (schema.DashboardView, error) {
	req := d.SCli.Post()
	req.Path(path)
	view := schema.DashboardView{}
	err := send(req, &view)
	return view, err
}

func (d *DomalensCli) Search(term string) (schema.DashboardView, error) {
	req := d.SCli.Post()
	req.Path("/dashboard/search")
	req.JSON(schema.ReqSearch{Term: term})
	view := schema.DashboardView{}
	err := send(req, &view)
	return view, err
}

func (d *DomalensCli) GetPage(page, size int) (schema.PaginatedDomains, error) {
	req := d.SCli.Get()
	req.Path("/domains")
	req.AddQuery("page", strconv.Itoa(page))
	req.AddQuery("size", strconv.Itoa(size))
	res := schema.PaginatedDomains{}
	err := send(req, &res)
	return res, err
}

func (d *DomalensCli) GetStats() (schema.MarketStats, error) {
	req := d.SCli.Get()
	req.Path("/stats")
	stats := schema.MarketStats{}
	err := send(req, &stats)
	return stats, err
}

// market

func (d *DomalensCli) GetEvents() ([]schema.LiveEvent, error) {
	req := d.SCli.Get()
	req.Path("/events")
	res := schema.RespEvents{}
	err := send(req, &res)
	return res.Events, err
}

func (d *DomalensCli) GetHistory(domain string) ([]schema.HistoryEvent, error) {
	req := d.SCli.Get()
	req.Path("/history/" + url.PathEscape(domain))
	res := schema.RespHistory{}
	err := send(req, &res)
	return res.Events, err
}

func (d *DomalensCli) SubmitOffer(domain string, amount decimal.Decimal, currency, offerer string) (schema.OfferResult, error) {
	req := d.SCli.Post()
	req.Path("/offer")
	req.JSON(schema.OfferRequest{
		Domain:  domain,
		Price:   schema.OfferPrice{Amount: amount, Currency: currency},
		Offerer: offerer,
	})
	res := schema.OfferResult{}
	err := send(req, &res)
	return res, err
}

// models

func (d *DomalensCli) GetScores(domain string) (schema.ModelScores, error) {
	req := d.SCli.Get()
	req.Path("/models/scores/" + url.PathEscape(domain))
	scores := schema.ModelScores{}
	err := send(req, &scores)
	return scores, err
}

func (d *DomalensCli) GetDemos() ([]schema.ModelDemo, error) {
	req := d.SCli.Get()
	req.Path("/models/demos")
	demos := make([]schema.ModelDemo, 0)
	err := send(req, &demos)
	return demos, err
}

// send decodes a 2xx body into out; error bodies come back as schema.RespErr.
func send(req *gentleman.Request, out interface{}) error {
	resp, err := req.Send()
	if err != nil {
		return err
	}
	defer resp.Close()
	body := resp.Bytes()
	if !resp.Ok {
		respErr := schema.RespErr{}
		if err := json.Unmarshal(body, &respErr); err == nil && respErr.Err != "" {
			return respErr
		}
		return fmt.Errorf("resp failed: %d %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

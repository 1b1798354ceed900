package domalens

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/dashboard"
	"github.com/domalens/domalens/doma"
	"github.com/domalens/domalens/feed"
	"github.com/domalens/domalens/market"
	"github.com/domalens/domalens/models"
	"github.com/domalens/domalens/schema"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
)

var log = common.NewLog("domalens")

type Domalens struct {
	cfg    *schema.Config
	engine *gin.Engine
	rnd    common.Rand

	source    dashboard.DomainSource
	board     *dashboard.Dashboard
	simulator *feed.Simulator
	window    *feed.Window
	history   *market.HistoryGenerator
	offers    *market.OfferBook
	models    *models.Client

	scheduler    *gocron.Scheduler
	transactions atomic.Int64
	kWriter      *KWriter

	srv         *http.Server
	metricSrv   *http.Server
	unsubscribe func()
	done        chan struct{} // closed by Close, ends websocket streams
	closeOnce   sync.Once
}

func New(cfg *schema.Config) (*Domalens, error) {
	rnd := common.NewRand()
	directory := doma.NewClient(cfg.GraphQL.Endpoint, cfg.GraphQL.ApiKey, cfg.GraphQL.Timeout, doma.NewRandSynthesizer(rnd))
	source := &meteredSource{source: directory}

	modelCli, err := models.New(cfg.Models, cfg.Demos)
	if err != nil {
		return nil, err
	}

	d := &Domalens{
		cfg:       cfg,
		engine:    gin.New(),
		rnd:       rnd,
		source:    source,
		board:     dashboard.New(source, cfg.PageSize),
		simulator: feed.NewSimulator(cfg.Feed.Interval, cfg.Feed.Domains, rnd),
		window:    feed.NewWindow(cfg.Feed.Window),
		history:   market.NewHistoryGenerator(cfg.Market.HistoryDelay, rnd),
		offers:    market.NewOfferBook(cfg.Market.OfferDelay),
		models:    modelCli,
		scheduler: gocron.NewScheduler(time.UTC),
		done:      make(chan struct{}),
	}
	d.transactions.Store(cfg.Stats.TransactionsStart)

	if cfg.Kafka.Start {
		d.kWriter, err = NewKWriter(LiveEventTopic, cfg.Kafka.Uri)
		if err != nil {
			modelCli.Close()
			return nil, err
		}
	}

	if err := d.router(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Run starts the background jobs, the metric server and the api server. It
// does not block.
func (d *Domalens) Run() {
	d.startFeed()
	d.runJobs()
	go d.board.Load(context.Background())

	if d.cfg.MetricPort != "" {
		d.metricSrv = common.NewMetricServer(d.cfg.MetricPort)
	}
	d.srv = &http.Server{Addr: d.cfg.Port, Handler: d.engine}
	go func() {
		log.Info("api server listening", "port", d.cfg.Port)
		if err := d.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server stopped", "err", err)
		}
	}()
}

// startFeed keeps the recent-events window filled from the simulator and
// mirrors every event to kafka and metrics.
func (d *Domalens) startFeed() {
	d.unsubscribe = d.simulator.Subscribe(d.onLiveEvent)
}

func (d *Domalens) onLiveEvent(ev schema.LiveEvent) {
	d.window.Push(ev)
	metricLiveEvent(ev.Type)
	if d.kWriter == nil {
		return
	}
	by, err := json.Marshal(ev)
	if err != nil {
		log.Error("json.Marshal(ev)", "id", ev.ID, "err", err)
		return
	}
	if err := d.kWriter.Write(by); err != nil {
		log.Error("kafka write live event failed", "id", ev.ID, "err", err)
	}
}

func (d *Domalens) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
		if d.unsubscribe != nil {
			d.unsubscribe()
		}
		d.simulator.Close()
		d.scheduler.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if d.srv != nil {
			if err := d.srv.Shutdown(ctx); err != nil {
				log.Error("shutdown api server", "err", err)
			}
		}
		if d.metricSrv != nil {
			if err := d.metricSrv.Shutdown(ctx); err != nil {
				log.Error("shutdown metric server", "err", err)
			}
		}
		d.models.Close()
		if d.kWriter != nil {
			d.kWriter.Close()
		}
	})
}

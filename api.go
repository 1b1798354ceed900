package domalens

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait = 10 * time.Second
	wsBuffer    = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (d *Domalens) router() error {
	r := d.engine
	r.Use(gin.Recovery())
	r.Use(common.CORSMiddleware())
	limiter, err := common.LimiterMiddleware(d.cfg.RateLimit.Limit, d.cfg.RateLimit.Period)
	if err != nil {
		return err
	}

	v1 := r.Group("/")
	v1.Use(limiter)
	{
		v1.GET("/dashboard", d.getDashboard)
		v1.POST("/dashboard/next", d.nextPage)
		v1.POST("/dashboard/prev", d.prevPage)
		v1.POST("/dashboard/page/:page", d.goToPage)
		v1.POST("/dashboard/search", d.search)

		v1.GET("/domains", d.getDomains)
		v1.GET("/stats", d.getStats)
		v1.GET("/history/:domain", d.getHistory)
		v1.POST("/offer", d.submitOffer)

		v1.GET("/events", d.getEvents)
		v1.GET("/models/demos", d.getDemos)
		v1.GET("/models/scores/:domain", d.getScores)
	}
	// long lived, kept out of the limiter
	r.GET("/events/ws", d.streamEvents)
	return nil
}

func (d *Domalens) view() schema.DashboardView {
	v := d.board.View()
	v.Stats.Transactions24h = d.transactions.Load()
	return v
}

func (d *Domalens) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, d.view())
}

func (d *Domalens) nextPage(c *gin.Context) {
	d.board.Next(c.Request.Context())
	c.JSON(http.StatusOK, d.view())
}

func (d *Domalens) prevPage(c *gin.Context) {
	d.board.Prev(c.Request.Context())
	c.JSON(http.StatusOK, d.view())
}

func (d *Domalens) goToPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		errorResponse(c, schema.ErrInvalidPage.Error())
		return
	}
	if err := d.board.GoTo(c.Request.Context(), page); err != nil {
		errorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, d.view())
}

func (d *Domalens) search(c *gin.Context) {
	req := schema.ReqSearch{}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, err.Error())
		return
	}
	d.board.SetSearch(req.Term)
	c.JSON(http.StatusOK, d.view())
}

// getDomains fetches one page without touching the dashboard state.
func (d *Domalens) getDomains(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		errorResponse(c, schema.ErrInvalidPage.Error())
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(d.board.PageSize())))
	if err != nil || size < 1 || size > schema.MaxPageSize {
		errorResponse(c, schema.ErrInvalidSize.Error())
		return
	}
	c.JSON(http.StatusOK, d.source.FetchPage(c.Request.Context(), page, size))
}

func (d *Domalens) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, d.view().Stats)
}

func (d *Domalens) getHistory(c *gin.Context) {
	domain := strings.TrimSpace(c.Param("domain"))
	if domain == "" {
		errorResponse(c, schema.ErrNullDomain.Error())
		return
	}
	c.JSON(http.StatusOK, schema.RespHistory{
		Domain: domain,
		Events: d.history.FetchHistory(c.Request.Context(), domain),
	})
}

func (d *Domalens) submitOffer(c *gin.Context) {
	req := schema.OfferRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		errorResponse(c, schema.ErrNullDomain.Error())
		return
	}
	res := d.offers.SubmitOffer(c.Request.Context(), req)
	metricOffer(res)
	c.JSON(http.StatusOK, res)
}

func (d *Domalens) getEvents(c *gin.Context) {
	c.JSON(http.StatusOK, schema.RespEvents{Events: d.window.Events()})
}

// streamEvents pushes live events to a websocket client until it goes away
// or the server closes.
// Slow clients miss events rather than stall the simulator.
func (d *Domalens) streamEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	events := make(chan schema.LiveEvent, wsBuffer)
	unsubscribe := d.simulator.Subscribe(func(ev schema.LiveEvent) {
		select {
		case events <- ev:
		default:
			log.Debug("drop live event for slow client", "id", ev.ID, "remote", c.ClientIP())
		}
	})
	defer unsubscribe()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-d.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(wsWriteWait))
			return
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Debug("websocket write failed", "err", err)
				return
			}
		}
	}
}

func (d *Domalens) getDemos(c *gin.Context) {
	c.JSON(http.StatusOK, d.models.Demos())
}

func (d *Domalens) getScores(c *gin.Context) {
	domain := strings.TrimSpace(c.Param("domain"))
	if domain == "" {
		errorResponse(c, schema.ErrNullDomain.Error())
		return
	}
	c.JSON(http.StatusOK, d.models.FetchScores(c.Request.Context(), domain))
}

func errorResponse(c *gin.Context, err string) {
	// client error
	c.JSON(http.StatusBadRequest, schema.RespErr{
		Err: err,
	})
}

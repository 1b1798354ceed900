package feed

import (
	"sync"
	"time"

	"github.com/domalens/domalens/common"
	"github.com/domalens/domalens/schema"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var log = common.NewLog("feed")

const DefaultInterval = 3 * time.Second

var DefaultDomains = []string{"quantum.ai", "web3.xyz", "defi.co", "lens.xyz", "market.base", "art.eth", "vision.io"}

type subscription struct {
	lock   sync.Mutex
	closed bool
	fn     func(schema.LiveEvent)
}

// deliver holds the subscription lock for the duration of the callback so an
// unsubscribe that returns never races a late delivery.
func (sub *subscription) deliver(ev schema.LiveEvent) {
	sub.lock.Lock()
	defer sub.lock.Unlock()
	if sub.closed {
		return
	}
	sub.fn(ev)
}

func (sub *subscription) close() {
	sub.lock.Lock()
	sub.closed = true
	sub.lock.Unlock()
}

// Simulator emits synthetic marketplace events. The scheduler is started by
// the first Subscribe and stopped when the last subscription ends.
// Callbacks run on the scheduler goroutine and must not call their own
// unsubscribe function synchronously.
type Simulator struct {
	interval time.Duration
	domains  []string
	rnd      common.Rand

	lock      sync.Mutex
	subs      map[uint64]*subscription
	nextId    uint64
	scheduler *gocron.Scheduler
	closed    bool
}

func NewSimulator(interval time.Duration, domains []string, rnd common.Rand) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if len(domains) == 0 {
		domains = DefaultDomains
	}
	return &Simulator{
		interval: interval,
		domains:  domains,
		rnd:      rnd,
		subs:     make(map[uint64]*subscription),
	}
}

// Subscribe registers fn for every future event. The returned function
// unsubscribes; calling it more than once is a no-op.
func (s *Simulator) Subscribe(fn func(schema.LiveEvent)) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return func() {}
	}
	id := s.nextId
	s.nextId++
	s.subs[id] = sub
	if s.scheduler == nil {
		s.scheduler = s.startScheduler()
	}
	s.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.close()
			s.remove(id)
		})
	}
}

func (s *Simulator) remove(id uint64) {
	s.lock.Lock()
	delete(s.subs, id)
	var stopped *gocron.Scheduler
	if len(s.subs) == 0 && s.scheduler != nil {
		stopped = s.scheduler
		s.scheduler = nil
	}
	s.lock.Unlock()

	if stopped != nil {
		stopped.Stop()
	}
}

// Running reports whether events are currently being produced.
func (s *Simulator) Running() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.scheduler != nil
}

func (s *Simulator) startScheduler() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(s.tick); err != nil {
		// interval is validated in NewSimulator, gocron only rejects non-positive ones
		log.Error("schedule live events failed", "interval", s.interval, "err", err)
	}
	scheduler.StartAsync()
	return scheduler
}

// Close ends all subscriptions and stops the scheduler. Subscribe after Close
// returns an inert subscription.
func (s *Simulator) Close() {
	s.lock.Lock()
	s.closed = true
	subs := s.subs
	s.subs = make(map[uint64]*subscription)
	scheduler := s.scheduler
	s.scheduler = nil
	s.lock.Unlock()

	for _, sub := range subs {
		sub.close()
	}
	if scheduler != nil {
		scheduler.Stop()
	}
}

func (s *Simulator) tick() {
	s.lock.Lock()
	subs := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.lock.Unlock()
	if len(subs) == 0 {
		return
	}

	ev := s.NewEvent()
	for _, sub := range subs {
		sub.deliver(copyEvent(ev))
	}
}

// NewEvent draws one event: uniform kind, uniform domain, and a price in [0, 5)
// rounded to cents for sales.
func (s *Simulator) NewEvent() schema.LiveEvent {
	typ := schema.LiveEventTypes[s.rnd.Intn(len(schema.LiveEventTypes))]
	ev := schema.LiveEvent{
		ID:        uuid.NewString(),
		Type:      typ,
		Domain:    s.domains[s.rnd.Intn(len(s.domains))],
		Timestamp: time.Now(),
	}
	if typ == schema.LiveEventSold {
		price := decimal.NewFromFloat(s.rnd.Float64() * 5).Round(2)
		ev.Price = &price
	}
	return ev
}

func copyEvent(ev schema.LiveEvent) schema.LiveEvent {
	if ev.Price != nil {
		price := *ev.Price
		ev.Price = &price
	}
	return ev
}

package common

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the subset of *rand.Rand the simulators draw from. Tests inject a
// seeded *rand.Rand; production code uses NewRand.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Int63n(n int64) int64
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand returns a time-seeded Rand that is safe for concurrent use.
func NewRand() Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *lockedRand) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Int63n(n)
}

package feed

import (
	"sync"

	"github.com/domalens/domalens/schema"
)

const DefaultWindow = 51

// Window keeps the most recent events, newest first.
type Window struct {
	size   int
	lock   sync.RWMutex
	events []schema.LiveEvent
}

func NewWindow(size int) *Window {
	if size <= 0 {
		size = DefaultWindow
	}
	return &Window{size: size, events: make([]schema.LiveEvent, 0, size)}
}

func (w *Window) Push(ev schema.LiveEvent) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if len(w.events) < w.size {
		w.events = append(w.events, schema.LiveEvent{})
	}
	copy(w.events[1:], w.events[:len(w.events)-1])
	w.events[0] = ev
}

func (w *Window) Events() []schema.LiveEvent {
	w.lock.RLock()
	defer w.lock.RUnlock()
	events := make([]schema.LiveEvent, len(w.events))
	copy(events, w.events)
	return events
}

func (w *Window) Len() int {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return len(w.events)
}

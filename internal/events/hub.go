// Package events fans reservation changes out to live subscribers such as
// the ops websocket feed.
package events

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/models"
)

type Type string

const (
	ReservationCreated  Type = "reservation_created"
	ReservationReturned Type = "reservation_returned"
)

type Event struct {
	Type        Type               `json:"type"`
	Reservation models.Reservation `json:"reservation"`
	At          time.Time          `json:"at"`
}

// Hub delivers every published Event to all current subscribers. Publish
// never blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// cancel func unregisters it and closes the channel; it is safe to call
// more than once.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan Event, buffer)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish returns the number of subscribers the event reached.
func (h *Hub) Publish(e Event) int {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- e:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

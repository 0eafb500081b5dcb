// Package hub fans full address snapshots out to the active realtime
// subscribers. Subscribers always receive the complete ordered list, never
// deltas, mirroring how the list is stored and rendered.
package hub

import (
	"log"
	"sync"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

type addressLister interface {
	List() ([]model.Address, error)
}

type Hub struct {
	lister      addressLister
	mutex       sync.Mutex
	subscribers map[chan []model.Address]struct{}
}

func New(lister addressLister) *Hub {
	return &Hub{
		lister:      lister,
		subscribers: make(map[chan []model.Address]struct{}),
	}
}

// Subscribe registers a snapshot channel and returns it along with a
// cancel function. Cancelling is idempotent; the channel is closed once
// and never delivered to again.
func (h *Hub) Subscribe() (<-chan []model.Address, func()) {
	snapshots := make(chan []model.Address, 1)

	h.mutex.Lock()
	h.subscribers[snapshots] = struct{}{}
	h.mutex.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mutex.Lock()
			delete(h.subscribers, snapshots)
			close(snapshots)
			h.mutex.Unlock()
		})
	}

	return snapshots, cancel
}

// Broadcast loads the current snapshot once and hands it to every
// subscriber. A subscriber which hasn't consumed the previous snapshot yet
// only ever sees the newest one (latest wins, older snapshots are dropped).
func (h *Hub) Broadcast() {
	addresses, err := h.lister.List()
	if err != nil {
		log.Printf("error loading snapshot for broadcast: %s\n", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for snapshots := range h.subscribers {
		select {
		case snapshots <- addresses:
		default:
			select {
			case <-snapshots:
			default:
			}
			select {
			case snapshots <- addresses:
			default:
			}
		}
	}
}

// Subscribers returns the number of currently registered subscribers.
func (h *Hub) Subscribers() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.subscribers)
}

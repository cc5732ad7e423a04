package live

import (
	"sync"

	"mecanica_rff/internal/usecase/interfaces"
)

type nudger interface {
	Nudge()
}

// Hub routes write notifications to the feeds of a collection.
type Hub struct {
	mu    sync.RWMutex
	feeds map[string][]nudger
}

var _ interfaces.ICollectionNotifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{feeds: make(map[string][]nudger)}
}

func (h *Hub) Register(collection string, n nudger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.feeds[collection] = append(h.feeds[collection], n)
}

// Notify is called after a write to collection.
func (h *Hub) Notify(collection string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, n := range h.feeds[collection] {
		n.Nudge()
	}
}

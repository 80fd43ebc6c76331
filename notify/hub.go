package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 8

// Hub fans sale events out to connected dashboard clients. Sends are
// non-blocking: a subscriber that falls behind misses events rather
// than stalling the hub.
type Hub struct {
	mu   sync.Mutex
	subs map[chan SaleEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan SaleEvent]struct{})}
}

// Subscribe registers a dashboard client. The returned cancel func
// must be called when the client disconnects.
func (h *Hub) Subscribe() (<-chan SaleEvent, func()) {
	ch := make(chan SaleEvent, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) Broadcast(ev SaleEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// Slow client; drop the event for it.
		}
	}
}

// SubscriberCount is used by tests and the dashboard summary.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Run consumes the redis channel and feeds Broadcast until ctx is
// cancelled. Malformed payloads are dropped with a log line.
func (h *Hub) Run(ctx context.Context, rdb *redis.Client) {
	sub := rdb.Subscribe(ctx, ChannelSales)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev SaleEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("notify: drop malformed sale event: %v", err)
				continue
			}
			h.Broadcast(ev)
		}
	}
}

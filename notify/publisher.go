package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Publisher pushes sale events onto the redis channel. Publishing is
// fire-and-forget: failures are logged and swallowed so they can never
// fail a sale that already committed.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) PublishSale(ctx context.Context, ev SaleEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("notify: marshal sale event %d: %v", ev.SaleID, err)
		return
	}
	if err := p.rdb.Publish(ctx, ChannelSales, b).Err(); err != nil {
		log.Printf("notify: publish sale event %d: %v", ev.SaleID, err)
	}
}

package notify

import "time"

// ChannelSales is the redis pub/sub channel carrying sale summaries.
// Delivery is best effort: subscribers only see events published while
// they are connected, and nothing is replayed.
const ChannelSales = "sales.events"

type SaleEvent struct {
	SaleID           uint      `json:"sale_id"`
	SaleNumber       string    `json:"sale_number"`
	FinalAmountCents int64     `json:"final_amount_cents"`
	Message          string    `json:"message"`
	OccurredAt       time.Time `json:"occurred_at"`
}

package kafka

import "time"

type PayoutEvent struct {
	EventID   string             `json:"event_id"`
	Payouts   map[string]float64 `json:"payouts"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

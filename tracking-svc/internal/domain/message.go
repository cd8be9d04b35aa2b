package domain

import "time"

// OrderEvent mirrors the message order-svc publishes on every status
// transition.
type OrderEvent struct {
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderStatus is the read model served to clients: just the latest known
// status per order. Never authoritative; the order service is.
type OrderStatus struct {
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeStatus folds the legacy ON_DELIVERY spelling into ON_THE_WAY.
// Old producers may still emit it; it is never served back out.
func NormalizeStatus(status string) string {
	if status == "ON_DELIVERY" {
		return "ON_THE_WAY"
	}
	return status
}

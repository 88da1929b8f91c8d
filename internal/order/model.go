package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// KnownStatus reports whether s is a member of the fixed status vocabulary.
func KnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions leave s.
func Terminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to the
// next: the linear pending -> processing -> shipped -> delivered chain, with
// cancelled reachable from any non-terminal state.
func CanTransition(from, to Status) bool {
	if Terminal(from) || !KnownStatus(to) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusProcessing
	case StatusProcessing:
		return to == StatusShipped
	case StatusShipped:
		return to == StatusDelivered
	}
	return false
}

// Order is the persisted header for a placed order. Created once at
// submission; afterwards only the status field changes, by an
// administrative actor.
type Order struct {
	ID                    string    `json:"id"`
	CustomerID            string    `json:"customer_id"`
	OrderNumber           string    `json:"order_number"`
	TrackingID            string    `json:"tracking_id"`
	TotalAmount           float64   `json:"total_amount"`
	Status                Status    `json:"status"`
	DeliveryAddress       string    `json:"delivery_address"`
	CustomerName          string    `json:"customer_name"`
	CustomerEmail         string    `json:"customer_email"`
	CustomerPhone         string    `json:"customer_phone"`
	PreferredDeliveryTime *string   `json:"preferred_delivery_time,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	Items                 []Item    `json:"items"`
}

// Item is a line snapshot captured at submission time, deliberately
// decoupled from later catalog changes.
type Item struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

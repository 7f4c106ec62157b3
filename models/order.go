package models

import (
	"encoding/json"
	"time"
)

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Status    Status      `json:"status"`
	Address   *string     `json:"address,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Snapshot returns the JSON encoding shared by the cache and the event
// stream. Both side channels carry the same payload so the reconciliation
// consumer can compare them directly.
func (o *Order) Snapshot() ([]byte, error) {
	return json.Marshal(o)
}

func OrderFromSnapshot(data []byte) (*Order, error) {
	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

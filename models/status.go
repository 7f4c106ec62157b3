package models

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of an order. Orders only move forward
// through the sequence; backward and repeated transitions are rejected.
type Status string

const (
	StatusInitiated        Status = "INITIATED"
	StatusAddressFilled    Status = "ADDRESS_FILLED"
	StatusPaymentPending   Status = "PAYMENT_PENDING"
	StatusPaymentConfirmed Status = "PAYMENT_CONFIRMED"
	StatusShipped          Status = "SHIPPED"
	StatusCompleted        Status = "COMPLETED"
)

var statusOrder = []Status{
	StatusInitiated,
	StatusAddressFilled,
	StatusPaymentPending,
	StatusPaymentConfirmed,
	StatusShipped,
	StatusCompleted,
}

func ParseStatus(s string) (Status, error) {
	for _, status := range statusOrder {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

func (s Status) rank() int {
	for i, status := range statusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool {
	return s.rank() >= 0
}

// CanAdvanceTo reports whether moving to next advances the lifecycle.
// Only strictly forward moves are allowed.
func (s Status) CanAdvanceTo(next Status) bool {
	current, target := s.rank(), next.rank()
	return current >= 0 && target >= 0 && target > current
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON rejects statuses outside the enumerated set, so malformed
// snapshots cannot introduce an invalid state.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

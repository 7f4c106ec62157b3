package models

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("PAYMENT_PENDING")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if status != StatusPaymentPending {
		t.Errorf("Expected %s, got %s", StatusPaymentPending, status)
	}

	if _, err := ParseStatus("SHIPPING"); err == nil {
		t.Error("Expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("Expected error for empty status")
	}
}

func TestStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusInitiated, StatusAddressFilled, true},
		{StatusAddressFilled, StatusPaymentPending, true},
		{StatusPaymentPending, StatusPaymentConfirmed, true},
		{StatusPaymentConfirmed, StatusShipped, true},
		{StatusShipped, StatusCompleted, true},
		// forward skips stay legal: payment can be processed straight
		// after address capture
		{StatusAddressFilled, StatusPaymentConfirmed, true},
		{StatusInitiated, StatusCompleted, true},
		// no backward moves, no repeats
		{StatusShipped, StatusPaymentPending, false},
		{StatusCompleted, StatusShipped, false},
		{StatusAddressFilled, StatusAddressFilled, false},
		{StatusCompleted, StatusCompleted, false},
		// unknown states never transition
		{Status("BOGUS"), StatusShipped, false},
		{StatusInitiated, Status("BOGUS"), false},
	}

	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Errorf("CanAdvanceTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusCompleted.Terminal() {
		t.Error("Expected COMPLETED to be terminal")
	}
	if StatusShipped.Terminal() {
		t.Error("Expected SHIPPED not to be terminal")
	}
}

func TestStatusUnmarshalJSONRejectsUnknown(t *testing.T) {
	var status Status
	if err := json.Unmarshal([]byte(`"SHIPPED"`), &status); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if status != StatusShipped {
		t.Errorf("Expected %s, got %s", StatusShipped, status)
	}

	if err := json.Unmarshal([]byte(`"DELIVERED"`), &status); err == nil {
		t.Error("Expected error for status outside the enumerated set")
	}
	if err := json.Unmarshal([]byte(`42`), &status); err == nil {
		t.Error("Expected error for non-string status")
	}
}

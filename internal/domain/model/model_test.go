package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
)

func TestStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Status
		value string
	}{
		{"pending", StatusPending, "pending"},
		{"completed", StatusCompleted, "completed"},
		{"failed", StatusFailed, "failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestStatusTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusPending, false},
		{StatusFailed, StatusCompleted, false},
		{StatusFailed, StatusFailed, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			got, err := tc.from.Transition(tc.to)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.to {
					t.Fatalf("expected %s, got %s", tc.to, got)
				}
				return
			}
			if !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
				t.Fatalf("expected invalid transition error, got %v", err)
			}
			if got != tc.from {
				t.Fatalf("expected status to stay %s, got %s", tc.from, got)
			}
		})
	}
}

func TestOrderBalanced(t *testing.T) {
	order := Order{
		Subtotal: decimal.RequireFromString("89.99"),
		Tax:      decimal.RequireFromString("4.50"),
		Total:    decimal.RequireFromString("94.49"),
	}
	if !order.Balanced() {
		t.Fatal("expected order to be balanced")
	}
	order.Total = decimal.RequireFromString("94.50")
	if order.Balanced() {
		t.Fatal("expected order to be unbalanced")
	}
	if !order.Anonymous() {
		t.Fatal("expected order without user to be anonymous")
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.RequireFromString("2.50")}
	if !item.LineTotal().Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("unexpected line total %s", item.LineTotal())
	}
}

func TestConfirmationSucceeded(t *testing.T) {
	completed := Confirmation{Payment: Payment{Status: StatusCompleted}}
	if !completed.Succeeded() {
		t.Fatal("expected completed payment to succeed")
	}
	failed := Confirmation{Payment: Payment{Status: StatusFailed}}
	if failed.Succeeded() {
		t.Fatal("expected failed payment not to succeed")
	}
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{"empty cart", "0", "9.99", "0", "9.99"},
		{"below free shipping boundary", "49.99", "9.99", "3.9992", "63.9792"},
		{"at free shipping boundary", "50.00", "0", "4.00", "54.00"},
		{"above free shipping boundary", "60.00", "0", "4.80", "64.80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(d(tt.subtotal))

			if !got.Subtotal.Equal(d(tt.subtotal)) {
				t.Fatalf("subtotal: expected %s, got %s", tt.subtotal, got.Subtotal)
			}
			if !got.Shipping.Equal(d(tt.shipping)) {
				t.Fatalf("shipping: expected %s, got %s", tt.shipping, got.Shipping)
			}
			if !got.Tax.Equal(d(tt.tax)) {
				t.Fatalf("tax: expected %s, got %s", tt.tax, got.Tax)
			}
			if !got.Total.Equal(d(tt.total)) {
				t.Fatalf("total: expected %s, got %s", tt.total, got.Total)
			}
		})
	}
}

func TestTaxAppliesToSubtotalOnly(t *testing.T) {
	// Below the threshold shipping is charged, yet the tax stays 8% of the
	// subtotal alone.
	got := CalculateTotals(d("10.00"))
	if !got.Tax.Equal(d("0.80")) {
		t.Fatalf("expected tax 0.80, got %s", got.Tax)
	}
}

func TestFreeShipping(t *testing.T) {
	if CalculateTotals(d("49.99")).FreeShipping() {
		t.Fatal("expected paid shipping at 49.99")
	}
	if !CalculateTotals(d("50.00")).FreeShipping() {
		t.Fatal("expected free shipping at 50.00")
	}
}

func TestAmountToFreeShipping(t *testing.T) {
	if got := AmountToFreeShipping(d("42.50")); !got.Equal(d("7.50")) {
		t.Fatalf("expected 7.50, got %s", got)
	}
	if got := AmountToFreeShipping(d("50.00")); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := AmountToFreeShipping(d("80.00")); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
}

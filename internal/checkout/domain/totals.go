package domain

import "github.com/shopspring/decimal"

// Fixed business rules: flat-rate shipping waived from 50.00 up (inclusive),
// 8% tax on the subtotal only.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingRate      = decimal.New(999, -2)
	taxRate               = decimal.New(8, -2)
)

// OrderTotals are the checkout-facing numbers derived from a cart subtotal.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// FreeShipping reports whether shipping was waived.
func (t OrderTotals) FreeShipping() bool {
	return t.Shipping.IsZero()
}

// CalculateTotals derives shipping, tax and the grand total from a subtotal.
// It is recomputed fresh on every read; nothing here is cached or stored.
func CalculateTotals(subtotal decimal.Decimal) OrderTotals {
	shipping := flatShippingRate
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate)

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// AmountToFreeShipping is how much more the subtotal needs before shipping is
// waived; zero once the threshold is met.
func AmountToFreeShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	return freeShippingThreshold.Sub(subtotal)
}

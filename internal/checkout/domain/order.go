package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a completed simulated order.
type Order struct {
	ID        string
	Lines     []OrderLine
	Totals    OrderTotals
	CreatedAt time.Time
}

// OrderLine is one purchased line item with its price frozen at add time.
type OrderLine struct {
	ProductID int
	Title     string
	Image     string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

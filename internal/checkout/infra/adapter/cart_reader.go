package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/sleekshop/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/sleekshop/internal/checkout/app"
)

// CartServiceReader adapts the cart store to the checkout service's Cart port.
type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines() []checkoutapp.CartLine {
	items := r.svc.Items()
	lines := make([]checkoutapp.CartLine, 0, len(items))
	for _, li := range items {
		lines = append(lines, checkoutapp.CartLine{
			ProductID: li.ID,
			Title:     li.Title,
			Image:     li.Image,
			UnitPrice: li.Price,
			Quantity:  li.Quantity,
		})
	}
	return lines
}

func (r *CartServiceReader) Clear(ctx context.Context) {
	r.svc.Clear(ctx)
}

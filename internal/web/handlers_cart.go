package web

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	cartapp "github.com/dwikikusuma/sleekshop/internal/cart/app"
	"github.com/dwikikusuma/sleekshop/internal/checkout/domain"
)

type cartPageData struct {
	Lines         []domain.OrderLine
	Totals        domain.OrderTotals
	ItemCount     int
	ToFreeShip    decimal.Decimal
	HasToFreeShip bool
}

func (s *Server) handleCartPage(w http.ResponseWriter, r *http.Request) {
	lines, totals := s.checkout.Summary()
	remaining := domain.AmountToFreeShipping(totals.Subtotal)

	s.render(w, r, "cart.html", "Cart - SleekShop", cartPageData{
		Lines:         lines,
		Totals:        totals,
		ItemCount:     s.cart.ItemCount(),
		ToFreeShip:    remaining,
		HasToFreeShip: remaining.IsPositive(),
	})
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		redirectBack(w, r, "/shop")
		return
	}

	qty, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		qty = 1
	}

	product, ok := s.catalog.Product(r.Context(), id)
	if !ok {
		redirectBack(w, r, "/shop")
		return
	}

	s.cart.AddItem(r.Context(), cartapp.Product{
		ID:    product.ID,
		Title: product.Title,
		Price: product.Price,
		Image: product.Image,
	}, qty)

	setFlash(w, s.flash.Pop())

	if r.PostFormValue("buy") != "" {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}
	redirectBack(w, r, "/cart")
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	qty, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	s.cart.UpdateQuantity(r.Context(), id, qty)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	s.cart.RemoveItem(r.Context(), id)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeCart struct {
	lines   []CartLine
	cleared bool
}

func (c *fakeCart) Lines() []CartLine {
	if c.cleared {
		return nil
	}
	return c.lines
}

func (c *fakeCart) Clear(ctx context.Context) { c.cleared = true }

func line(id int, price string, qty int) CartLine {
	return CartLine{
		ProductID: id,
		Title:     "product",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func newTestService(cart Cart) *Service {
	return NewService(cart, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
}

func TestSummary(t *testing.T) {
	svc := newTestService(&fakeCart{lines: []CartLine{
		line(1, "25.00", 2),
		line(2, "10.00", 1),
	}})

	lines, totals := svc.Summary()

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if want := decimal.RequireFromString("50.00"); !lines[0].LineTotal.Equal(want) {
		t.Fatalf("expected line total %s, got %s", want, lines[0].LineTotal)
	}
	if want := decimal.RequireFromString("60.00"); !totals.Subtotal.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, totals.Subtotal)
	}
	if !totals.Shipping.IsZero() {
		t.Fatalf("expected free shipping, got %s", totals.Shipping)
	}
	if want := decimal.RequireFromString("64.80"); !totals.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, totals.Total)
	}
}

func TestPlaceOrder(t *testing.T) {
	t.Run("empty cart rejected", func(t *testing.T) {
		svc := newTestService(&fakeCart{})
		_, err := svc.PlaceOrder(context.Background(), validCheckoutForm())
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("invalid form leaves cart untouched", func(t *testing.T) {
		cart := &fakeCart{lines: []CartLine{line(1, "20.00", 1)}}
		svc := newTestService(cart)

		form := validCheckoutForm()
		form.Email = "nope"
		_, err := svc.PlaceOrder(context.Background(), form)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if cart.cleared {
			t.Fatal("cart must not be cleared on a rejected order")
		}
	})

	t.Run("success clears cart", func(t *testing.T) {
		cart := &fakeCart{lines: []CartLine{line(1, "25.00", 3)}}
		svc := newTestService(cart)

		order, err := svc.PlaceOrder(context.Background(), validCheckoutForm())
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if order.ID == "" {
			t.Fatal("expected an order id")
		}
		if len(order.Lines) != 1 || order.Lines[0].Quantity != 3 {
			t.Fatalf("unexpected order lines: %+v", order.Lines)
		}
		if want := decimal.RequireFromString("75.00"); !order.Totals.Subtotal.Equal(want) {
			t.Fatalf("expected subtotal %s, got %s", want, order.Totals.Subtotal)
		}
		if !cart.cleared {
			t.Fatal("expected the cart to be cleared")
		}
	})

	t.Run("cancelled context aborts processing", func(t *testing.T) {
		cart := &fakeCart{lines: []CartLine{line(1, "25.00", 1)}}
		svc := NewService(cart, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.PlaceOrder(ctx, validCheckoutForm())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if cart.cleared {
			t.Fatal("cart must not be cleared on an aborted order")
		}
	})
}

func TestSubmitContact(t *testing.T) {
	svc := newTestService(&fakeCart{})

	err := svc.SubmitContact(ContactForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "other",
		Message:   "hi",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if err := svc.SubmitContact(ContactForm{}); err == nil {
		t.Fatal("expected a validation error")
	}
}

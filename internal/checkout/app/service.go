package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/sleekshop/internal/checkout/domain"
)

// ErrEmptyCart rejects checkout on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// CartLine is the checkout-side view of one cart line item.
type CartLine struct {
	ProductID int
	Title     string
	Image     string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Cart is the slice of the cart store checkout needs: the current snapshot
// and the ability to clear it after a completed order.
type Cart interface {
	Lines() []CartLine
	Clear(ctx context.Context)
}

// Service runs the simulated checkout flow over the live cart.
type Service struct {
	cart            Cart
	log             *slog.Logger
	processingDelay time.Duration
}

func NewService(cart Cart, log *slog.Logger, processingDelay time.Duration) *Service {
	return &Service{
		cart:            cart,
		log:             log,
		processingDelay: processingDelay,
	}
}

// Summary derives the order lines and totals from the current cart snapshot.
// It recomputes on every call so mutations show up immediately.
func (s *Service) Summary() ([]domain.OrderLine, domain.OrderTotals) {
	lines := s.orderLines()

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}
	return lines, domain.CalculateTotals(subtotal)
}

// PlaceOrder validates the form and simulates order processing. On success
// the cart is cleared and the completed order returned.
func (s *Service) PlaceOrder(ctx context.Context, form CheckoutForm) (domain.Order, error) {
	lines, totals := s.Summary()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	if err := form.Validate(); err != nil {
		return domain.Order{}, err
	}

	// Stand-in for a payment round trip.
	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return domain.Order{}, ctx.Err()
		}
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		Lines:     lines,
		Totals:    totals,
		CreatedAt: time.Now().UTC(),
	}

	s.cart.Clear(ctx)
	s.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int("lines", len(order.Lines)),
		slog.String("total", order.Totals.Total.StringFixed(2)),
	)

	return order, nil
}

// SubmitContact validates and "sends" a contact message.
func (s *Service) SubmitContact(form ContactForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	s.log.Info("contact message received", slog.String("subject", form.Subject))
	return nil
}

func (s *Service) orderLines() []domain.OrderLine {
	cartLines := s.cart.Lines()
	lines := make([]domain.OrderLine, 0, len(cartLines))
	for _, cl := range cartLines {
		lines = append(lines, domain.OrderLine{
			ProductID: cl.ProductID,
			Title:     cl.Title,
			Image:     cl.Image,
			UnitPrice: cl.UnitPrice,
			Quantity:  cl.Quantity,
			LineTotal: cl.UnitPrice.Mul(decimal.NewFromInt(int64(cl.Quantity))),
		})
	}
	return lines
}

package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/sleekshop/internal/cart/domain"
)

// Product is the denormalized view of a catalog product the cart snapshots at
// add time.
type Product struct {
	ID    int
	Title string
	Price decimal.Decimal
	Image string
}

// Service is the single source of truth for the in-progress order. It holds
// the ordered line-item sequence in memory and writes the whole sequence
// through to storage after every mutation. Storage trouble never escapes:
// loads degrade to an empty cart and failed writes leave the in-memory state
// authoritative.
type Service struct {
	mu       sync.Mutex
	items    []domain.LineItem
	storage  Storage
	notifier Notifier
	log      *slog.Logger
}

// NewService loads the persisted cart. A missing or unreadable stored value
// yields an empty cart; it is reported but never fails construction.
func NewService(ctx context.Context, storage Storage, notifier Notifier, log *slog.Logger) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	items, err := storage.Load(ctx)
	if err != nil {
		log.Warn("cart load failed, starting empty", slog.Any("err", err))
		items = nil
	}

	return &Service{
		items:    items,
		storage:  storage,
		notifier: notifier,
		log:      log,
	}
}

// AddItem merges the product into the cart: an existing line item gains qty,
// otherwise a new line item is appended with a snapshot of the product fields.
// qty below 1 is treated as 1.
func (s *Service) AddItem(ctx context.Context, p Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, domain.LineItem{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: qty,
		})
	}
	s.persist(ctx)
	count := domain.Count(s.items)
	s.mu.Unlock()

	s.notifier.ItemAdded(p.Title)
	s.notifier.CountChanged(count)
}

// RemoveItem deletes the line item with the given id. Unknown ids are a
// silent no-op.
func (s *Service) RemoveItem(ctx context.Context, id int) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, li := range s.items {
		if li.ID != id {
			kept = append(kept, li)
		}
	}
	s.items = kept
	s.persist(ctx)
	count := domain.Count(s.items)
	s.mu.Unlock()

	s.notifier.CountChanged(count)
}

// UpdateQuantity sets the quantity for the given id. A quantity of zero or
// less removes the item; unknown ids are a silent no-op.
func (s *Service) UpdateQuantity(ctx context.Context, id, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			break
		}
	}
	count := domain.Count(s.items)
	s.mu.Unlock()

	s.notifier.CountChanged(count)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()

	s.notifier.CountChanged(0)
}

// Items returns a copy of the current ordered snapshot.
func (s *Service) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the subtotal over all line items, recomputed on every call.
func (s *Service) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Total(s.items)
}

// ItemCount is the summed quantity over all line items.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Count(s.items)
}

// persist writes the full sequence through to storage. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.items); err != nil {
		s.log.Warn("cart save failed, in-memory state kept", slog.Any("err", err))
	}
}

package app

import (
	"context"

	"github.com/dwikikusuma/sleekshop/internal/cart/domain"
)

// Storage persists the full line-item sequence under one fixed key.
type Storage interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

// Notifier receives fire-and-forget cart signals for the UI. Implementations
// must not block or fail.
type Notifier interface {
	ItemAdded(title string)
	CountChanged(count int)
}

// NopNotifier discards all cart signals.
type NopNotifier struct{}

func (NopNotifier) ItemAdded(string) {}

func (NopNotifier) CountChanged(int) {}

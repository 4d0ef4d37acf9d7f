package app

import (
	"context"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
)

// Source fetches catalog data from the upstream product API.
type Source interface {
	Products(ctx context.Context, limit int) ([]domain.Product, error)
	Product(ctx context.Context, id int) (domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	ProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error)
}

// Cache memoizes catalog responses per query signature.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, v any)
}

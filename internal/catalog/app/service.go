package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
)

const defaultLimit = 20

// Service is the read-only catalog facade used by every page. Responses are
// memoized per query signature; upstream failures degrade to empty results so
// rendering never blocks on the catalog.
type Service struct {
	source Source
	cache  Cache
	log    *slog.Logger
}

func NewService(source Source, cache Cache, log *slog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		log:    log,
	}
}

// Products returns up to limit products, or an empty slice when the upstream
// call fails.
func (s *Service) Products(ctx context.Context, limit int) []domain.Product {
	if limit <= 0 {
		limit = defaultLimit
	}

	key := fmt.Sprintf("products_%d", limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Product)
	}

	products, err := s.source.Products(ctx, limit)
	if err != nil {
		s.log.Error("fetch products failed", slog.Int("limit", limit), slog.Any("err", err))
		return nil
	}

	s.cache.Set(key, products)
	return products
}

// Product returns the product with the given id. Absence and upstream failure
// are indistinguishable to callers: both report ok=false.
func (s *Service) Product(ctx context.Context, id int) (domain.Product, bool) {
	key := fmt.Sprintf("product_%d", id)
	if v, ok := s.cache.Get(key); ok {
		return v.(domain.Product), true
	}

	product, err := s.source.Product(ctx, id)
	if err != nil {
		s.log.Error("fetch product failed", slog.Int("id", id), slog.Any("err", err))
		return domain.Product{}, false
	}

	s.cache.Set(key, product)
	return product, true
}

// Categories returns all category names, or an empty slice on failure.
func (s *Service) Categories(ctx context.Context) []string {
	const key = "categories"
	if v, ok := s.cache.Get(key); ok {
		return v.([]string)
	}

	categories, err := s.source.Categories(ctx)
	if err != nil {
		s.log.Error("fetch categories failed", slog.Any("err", err))
		return nil
	}

	s.cache.Set(key, categories)
	return categories
}

// ProductsByCategory returns up to limit products in the given category, or an
// empty slice on failure.
func (s *Service) ProductsByCategory(ctx context.Context, category string, limit int) []domain.Product {
	if limit <= 0 {
		limit = defaultLimit
	}

	key := fmt.Sprintf("category_%s_%d", category, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Product)
	}

	products, err := s.source.ProductsByCategory(ctx, category, limit)
	if err != nil {
		s.log.Error("fetch products by category failed", slog.String("category", category), slog.Any("err", err))
		return nil
	}

	s.cache.Set(key, products)
	return products
}

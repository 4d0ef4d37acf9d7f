package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
	"github.com/dwikikusuma/sleekshop/internal/catalog/infra/memory"
)

type fakeSource struct {
	calls    int
	fail     bool
	products []domain.Product
}

func (f *fakeSource) Products(ctx context.Context, limit int) ([]domain.Product, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("upstream down")
	}
	if limit > len(f.products) {
		limit = len(f.products)
	}
	return f.products[:limit], nil
}

func (f *fakeSource) Product(ctx context.Context, id int) (domain.Product, error) {
	f.calls++
	if f.fail {
		return domain.Product{}, errors.New("upstream down")
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (f *fakeSource) Categories(ctx context.Context) ([]string, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("upstream down")
	}
	return []string{"electronics", "jewelery"}, nil
}

func (f *fakeSource) ProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("upstream down")
	}
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Backpack", Price: decimal.RequireFromString("109.95"), Category: "electronics"},
		{ID: 2, Title: "Shirt", Price: decimal.RequireFromString("22.30"), Category: "clothing"},
	}
}

func newTestService(source Source) *Service {
	return NewService(source, memory.NewCache(0), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProductsMemoized(t *testing.T) {
	source := &fakeSource{products: testProducts()}
	svc := newTestService(source)
	ctx := context.Background()

	first := svc.Products(ctx, 2)
	second := svc.Products(ctx, 2)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 products on both reads, got %d and %d", len(first), len(second))
	}
	if source.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", source.calls)
	}
}

func TestDistinctQuerySignaturesNotShared(t *testing.T) {
	source := &fakeSource{products: testProducts()}
	svc := newTestService(source)
	ctx := context.Background()

	svc.Products(ctx, 1)
	svc.Products(ctx, 2)

	if source.calls != 2 {
		t.Fatalf("expected two upstream calls for two limits, got %d", source.calls)
	}
}

func TestProductsFailureYieldsEmpty(t *testing.T) {
	source := &fakeSource{fail: true}
	svc := newTestService(source)

	if got := svc.Products(context.Background(), 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %d products", len(got))
	}
}

func TestFailuresAreNotMemoized(t *testing.T) {
	source := &fakeSource{fail: true, products: testProducts()}
	svc := newTestService(source)
	ctx := context.Background()

	svc.Products(ctx, 2)
	source.fail = false
	got := svc.Products(ctx, 2)

	if len(got) != 2 {
		t.Fatalf("expected recovery after upstream came back, got %d products", len(got))
	}
}

func TestProduct(t *testing.T) {
	source := &fakeSource{products: testProducts()}
	svc := newTestService(source)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		p, ok := svc.Product(ctx, 1)
		if !ok || p.Title != "Backpack" {
			t.Fatalf("expected Backpack, got %+v ok=%v", p, ok)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := svc.Product(ctx, 99); ok {
			t.Fatal("expected absence for unknown id")
		}
	})

	t.Run("memoized", func(t *testing.T) {
		before := source.calls
		svc.Product(ctx, 1)
		if source.calls != before {
			t.Fatalf("expected cache hit, upstream calls went %d -> %d", before, source.calls)
		}
	})
}

func TestCategories(t *testing.T) {
	source := &fakeSource{}
	svc := newTestService(source)

	got := svc.Categories(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}

	svc.Categories(context.Background())
	if source.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", source.calls)
	}
}

func TestProductsByCategory(t *testing.T) {
	source := &fakeSource{products: testProducts()}
	svc := newTestService(source)

	got := svc.ProductsByCategory(context.Background(), "electronics", 20)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only product 1, got %+v", got)
	}
}

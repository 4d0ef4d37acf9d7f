package app_test

import (
	"context"
	"strconv"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/sleekshop/internal/cart/app"
)

func TestConcurrentAddSameProductAccumulates(t *testing.T) {
	ctx := context.Background()
	storage := &memStorage{}
	svc := app.NewService(ctx, storage, app.NopNotifier{}, discardLogger())

	const n = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			svc.AddItem(ctx, product(1, "9.99"), 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	items := svc.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single line item, got %d", len(items))
	}
	if items[0].Quantity != n {
		t.Fatalf("expected quantity %d, got %d", n, items[0].Quantity)
	}
	if len(storage.items) != 1 || storage.items[0].Quantity != n {
		t.Fatalf("expected the stored cart to match, got %+v", storage.items)
	}
}

func TestConcurrentDistinctProducts(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(ctx, &memStorage{}, app.NopNotifier{}, discardLogger())

	const n = 50
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		id := i + 1
		g.Go(func() error {
			p := product(id, "1.00")
			p.Title = "product " + strconv.Itoa(id)
			svc.AddItem(ctx, p, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	if got := len(svc.Items()); got != n {
		t.Fatalf("expected %d line items, got %d", n, got)
	}
	if got := svc.ItemCount(); got != n {
		t.Fatalf("expected total count %d, got %d", n, got)
	}
}

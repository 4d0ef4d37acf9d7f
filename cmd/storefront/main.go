package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/sleekshop/internal/cart/app"
	"github.com/dwikikusuma/sleekshop/internal/cart/infra/bboltstore"
	catalogapp "github.com/dwikikusuma/sleekshop/internal/catalog/app"
	"github.com/dwikikusuma/sleekshop/internal/catalog/infra/fakestore"
	"github.com/dwikikusuma/sleekshop/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/sleekshop/internal/checkout/app"
	"github.com/dwikikusuma/sleekshop/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/sleekshop/internal/web"
	"github.com/dwikikusuma/sleekshop/pkg/config"
	"github.com/dwikikusuma/sleekshop/pkg/logger"
	"github.com/dwikikusuma/sleekshop/pkg/metrics"
	"github.com/dwikikusuma/sleekshop/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := bboltstore.Open(cfg.StoragePath)
	if err != nil {
		log.Error("storage open failed", slog.Any("err", err), slog.String("path", cfg.StoragePath))
		os.Exit(1)
	}
	defer store.Close()

	// One store instance per process; every consumer gets it by reference.
	flash := web.NewFlashNotifier()
	cartSvc := cartapp.NewService(ctx, store, flash, log)

	source := fakestore.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	cache := memory.NewCache(cfg.CatalogCacheSize)
	catalogSvc := catalogapp.NewService(source, cache, log)

	cartReader := adapter.NewCartServiceReader(cartSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, log, cfg.CheckoutDelay)

	m := metrics.NewServerMetrics("storefront")

	srv, err := web.NewServer(catalogSvc, cartSvc, checkoutSvc, flash, m, log)
	if err != nil {
		log.Error("server init failed", slog.Any("err", err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

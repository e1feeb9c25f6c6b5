package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nDmitry/rssreader/internal/api/rest"
	"github.com/nDmitry/rssreader/internal/app"
	"github.com/nDmitry/rssreader/internal/cache"
	"github.com/nDmitry/rssreader/internal/config"
	"github.com/nDmitry/rssreader/internal/feed"
	"github.com/nDmitry/rssreader/internal/fetcher"
	"github.com/nDmitry/rssreader/internal/i18n"
	"github.com/nDmitry/rssreader/internal/poller"
	"github.com/nDmitry/rssreader/internal/reader"
	"github.com/nDmitry/rssreader/internal/render"
	"github.com/nDmitry/rssreader/internal/state"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	logger := app.Logger()
	slog.SetDefault(logger)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Received first shutdown signal, starting graceful shutdown...")
		cancel()

		// If we receive a second signal, exit immediately
		<-sigChan
		logger.Info("Received second shutdown signal, exiting immediately...")
		os.Exit(1)
	}()

	cfg, err := config.Read(*configPath)

	if err != nil {
		logger.Error("Failed to read config", "error", err)
		os.Exit(1)
	}

	if err := config.ApplyEnv(cfg); err != nil {
		logger.Error("Failed to read environment", "error", err)
		os.Exit(1)
	}

	app.SetLevel(cfg.LogLevel)

	bundle, err := i18n.New()

	if err != nil {
		logger.Error("Failed to load translations", "error", err)
		os.Exit(1)
	}

	if err := config.Validate(cfg, bundle.Languages()); err != nil {
		logger.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	exportCache, err := cache.New(ctx, cfg.RedisAddr)

	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	defer exportCache.Close()

	store := state.NewStore(cfg.DefaultLanguage)

	page, err := render.New(bundle, cfg.DefaultLanguage)

	if err != nil {
		logger.Error("Failed to build the page", "error", err)
		os.Exit(1)
	}

	unbind := render.Bind(store, page)
	defer unbind()

	page.Render(store.Snapshot())

	feedFetcher := fetcher.New(cfg.ProxyURL, fetcher.WithTimeout(cfg.FetchTimeout))

	feedPoller := poller.New(store, feedFetcher,
		poller.WithInterval(cfg.PollInterval),
		poller.WithWorkers(cfg.PollWorkers),
	)

	if err := feedPoller.Start(ctx); err != nil {
		logger.Error("Failed to start the poller", "error", err)
		os.Exit(1)
	}

	defer feedPoller.Stop()

	server := rest.NewServer(rest.Deps{
		Cache:          exportCache,
		Actions:        reader.New(store, feedFetcher, bundle),
		Page:           page,
		Source:         store,
		Generator:      &feed.Generator{},
		ExportCacheTTL: cfg.ExportCacheTTL,
	}, cfg.Port)

	if err := server.Run(ctx); err != nil {
		logger.Error("Server error", "error", err)
		cancel()
		feedPoller.Stop()
		os.Exit(1)
	}

	logger.Info("Server exited gracefully")
}

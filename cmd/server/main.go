package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/invoicemaker/internal/address"
	"github.com/mmynk/invoicemaker/internal/config"
	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/metrics"
	"github.com/mmynk/invoicemaker/internal/server"
	"github.com/mmynk/invoicemaker/internal/storage/memory"
	"github.com/mmynk/invoicemaker/pkg/logging"
)

func main() {
	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "optional config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	store := memory.New()
	defer store.Close()
	if cfg.SessionTTL > 0 {
		go evictIdleSessions(ctx, store, cfg.SessionTTL)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sinks, err := buildSinks(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize export sinks", "error", err)
		os.Exit(1)
	}

	pipeline := export.NewPipeline(
		export.WithScale(cfg.ExportScale),
		export.WithSinks(sinks...),
		export.WithMetrics(m),
	)

	// Suggestions stay unavailable until the address book has loaded.
	addresses := address.NewCapability()
	go loadAddresses(addresses, cfg.AddressBook)

	handler := server.New(server.Deps{
		Store:          store,
		Pipeline:       pipeline,
		Addresses:      addresses,
		Metrics:        m,
		Gatherer:       reg,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := cfg.Addr()
	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func buildSinks(ctx context.Context, cfg config.Config) ([]export.Sink, error) {
	var sinks []export.Sink
	if cfg.DownloadsDir != "" {
		if err := os.MkdirAll(cfg.DownloadsDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create downloads dir: %w", err)
		}
		sinks = append(sinks, export.DirSink{Root: cfg.DownloadsDir})
		slog.Info("Writing exports to disk", "path", cfg.DownloadsDir)
	}
	if cfg.MinioEnabled() {
		sink, err := export.NewMinioSink(ctx, cfg.Minio)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
		slog.Info("Uploading exports to object storage", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
	}
	return sinks, nil
}

// evictIdleSessions drops sessions left untouched for longer than ttl.
func evictIdleSessions(ctx context.Context, store *memory.Store, ttl time.Duration) {
	ticker := time.NewTicker(min(ttl, time.Hour))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := store.EvictIdle(now.Add(-ttl)); n > 0 {
				slog.Info("Evicted idle sessions", "count", n, "remaining", store.Len())
			}
		}
	}
}

func loadAddresses(c *address.Capability, path string) {
	if path == "" {
		slog.Info("No address book configured, suggestions disabled")
		return
	}
	entries, err := address.LoadAddressBook(path)
	if err != nil {
		slog.Warn("Address suggestions unavailable", "path", path, "error", err)
		return
	}
	c.Provide(address.NewStaticProvider(entries, 0))
	slog.Info("Address suggestions ready", "entries", len(entries))
}

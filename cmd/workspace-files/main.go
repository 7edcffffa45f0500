// Command workspace-files serves list/read/write/edit/delete file tools for a
// single workspace directory over MCP on stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamzaessahbaoui/workspace-files/pkg/config"
	"github.com/hamzaessahbaoui/workspace-files/pkg/logging"
	"github.com/hamzaessahbaoui/workspace-files/pkg/mcpserver"
	"github.com/hamzaessahbaoui/workspace-files/pkg/tools/operations"
	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

func main() {
	// Load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ws, err := operations.NewWorkspace(cfg.Root, logger.Named("operations"))
	if err != nil {
		logger.Fatal("workspace setup failed", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	tk := toolkit.New("workspace_files",
		toolkit.WithLogger(logger.Named("toolkit")),
		toolkit.WithMetrics(toolkit.NewMetrics(registry)),
	)
	if err := operations.Register(tk, ws); err != nil {
		logger.Fatal("tool registration failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, registry, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	server := mcpserver.New(tk, &mcp.Implementation{Name: cfg.ServerName, Version: cfg.ServerVersion}, logger.Named("mcp"))
	logger.Info("serving workspace over stdio",
		zap.String("root", ws.Root()),
		zap.Int("tools", len(tk.Tools())))

	if err := mcpserver.Run(ctx, server); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("mcp server stopped", zap.Error(err))
	}
	logger.Info("shutting down")
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	logger.Info("metrics listening", zap.String("addr", addr))
	return srv
}

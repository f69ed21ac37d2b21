package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/wodsmith/internal/config"
	wodmcp "github.com/claude/wodsmith/internal/mcp"
	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
	"github.com/claude/wodsmith/internal/server"
	"github.com/claude/wodsmith/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *mcpMode {
		// stdout carries the MCP stream in stdio mode
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	log.Info("WodSmith starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.Open(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Build the movement catalog from curated data. Malformed curated files
	// degrade to the built-in vocabulary and heuristic inference.
	catalog, err := buildCatalog(cfg.Catalog, log)
	if err != nil {
		log.Error("failed to build movement catalog", "error", err)
		os.Exit(1)
	}

	if *mcpMode {
		mcpSrv := wodmcp.New(db, catalog, Version, log)
		log.Info("serving MCP over stdio")
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := server.New(db, catalog, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// buildCatalog assembles the movement catalog from the built-in vocabulary or
// a curated aliases file, plus optional modality overrides. Unreadable
// curated files are downgraded to warnings; inference covers the gap.
func buildCatalog(cfg config.CatalogConfig, log *slog.Logger) (*movements.Catalog, error) {
	loaded, err := loadOverrides(cfg.OverridesPath, log)
	if err != nil {
		return nil, err
	}

	if cfg.AliasesPath == "" {
		return movements.DefaultCatalog(loaded)
	}

	defs, err := movements.LoadDefinitions(cfg.AliasesPath)
	if err != nil {
		log.Warn("curated aliases unavailable; using built-in vocabulary", "path", cfg.AliasesPath, "error", err)
		return movements.DefaultCatalog(loaded)
	}
	return movements.New(defs, loaded)
}

func loadOverrides(path string, log *slog.Logger) (map[string]models.Modality, error) {
	if path == "" {
		return nil, nil
	}
	overrides, err := movements.LoadOverrides(path)
	if err != nil {
		log.Warn("modality overrides unavailable; falling back to inference", "path", path, "error", err)
		return nil, nil
	}
	return overrides, nil
}

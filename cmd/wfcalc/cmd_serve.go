package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sigmazhou/warframe-damage-calculator/internal/config"
	"github.com/sigmazhou/warframe-damage-calculator/internal/data"
	"github.com/sigmazhou/warframe-damage-calculator/internal/db"
	"github.com/sigmazhou/warframe-damage-calculator/internal/engine"
	"github.com/sigmazhou/warframe-damage-calculator/internal/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator API server",
	Long: `Starts the HTTP API: catalog lookups, damage calculations and the
websocket stream. The mod catalog loads from the embedded defaults, a
yaml file or PostgreSQL depending on configuration.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "config/wfcalc.yaml", "path to config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	cfg := config.Default()
	if _, err := os.Stat(serveConfigPath); err == nil {
		cfg, err = config.Load(serveConfigPath)
		if err != nil {
			return err
		}
	} else {
		slog.Info("config file not found, using defaults", "path", serveConfigPath)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("wfcalc starting", "log_level", cfg.LogLevel, "listen_addr", cfg.ListenAddr)

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.New(cfg, engine.New(engine.DefaultConfig()), catalog)
	httpSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("api server listening", "addr", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// loadCatalog resolves the configured catalog source. The postgres
// source migrates the schema and seeds missing defaults on startup.
func loadCatalog(ctx context.Context, cfg config.Config) (*data.Catalog, error) {
	switch cfg.Catalog.Source {
	case "file":
		return data.LoadFile(cfg.Catalog.Path)
	case "postgres":
		dsn := cfg.Catalog.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, err
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		embedded, err := data.LoadDefault()
		if err != nil {
			return nil, err
		}
		if err := database.SeedDefaults(ctx, embedded); err != nil {
			return nil, err
		}
		return database.LoadCatalog(ctx)
	default:
		return data.LoadDefault()
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

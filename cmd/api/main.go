// Package main starts the Holy Mole API: blast-radius lookups over the menu
// composition graph plus the inventory endpoints the dashboard uses.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/holymole/core/internal/blastradius"
	"github.com/holymole/core/internal/config"
	"github.com/holymole/core/internal/handlers"
	"github.com/holymole/core/internal/menu"
	"github.com/holymole/core/internal/metrics"
	"github.com/holymole/core/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "holymole-api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stdout)

	m, err := menu.Load(cfg.MenuFile)
	if err != nil {
		return err
	}
	engine, err := blastradius.New(*m)
	if err != nil {
		return fmt.Errorf("build menu graph: %w", err)
	}
	logger.Info("menu loaded",
		"menu_items", engine.TotalMenuCount(),
		"sub_recipes", len(m.SubRecipes),
		"ingredients", engine.IngredientCount(),
	)

	st, err := store.OpenSqlite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.SeedOnStart {
		if err := seedIfEmpty(context.Background(), st, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	met := metrics.New(reg)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	h := handlers.New(engine, st, met, logger, rng)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(h, met, reg, logger, cfg.CorsOrigin),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type seeder interface {
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context) (int, error)
}

func seedIfEmpty(ctx context.Context, s seeder, logger *slog.Logger) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seeded, err := s.Seed(ctx)
	if err != nil {
		return err
	}
	logger.Info("seeded empty inventory", "ingredients", seeded)
	return nil
}

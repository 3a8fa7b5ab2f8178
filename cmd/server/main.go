package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guardsofatlantis/companion-backend/internal/config"
	"github.com/guardsofatlantis/companion-backend/internal/heroes"
	"github.com/guardsofatlantis/companion-backend/internal/httpapi"
	"github.com/guardsofatlantis/companion-backend/internal/hub"
	"github.com/guardsofatlantis/companion-backend/internal/lobby"
	"github.com/guardsofatlantis/companion-backend/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Open(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("database unavailable", zap.Error(err))
		}
	} else {
		log.Warn("DATABASE_URL not set, running without match history")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := heroes.Default()
	h := hub.NewHub(ctx, func(parent context.Context) *lobby.Lobby {
		return lobby.NewLobby(parent, lobby.Options{
			Catalog:          catalog,
			Recorder:         recorder(st),
			StrategyTimerSec: cfg.StrategyTimerSec,
			MoveTimerSec:     cfg.MoveTimerSec,
			Log:              log,
		})
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpapi.SetupRoutes(h, catalog, st, log),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		h.Inbox() <- hub.ShutdownHub{}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

// recorder keeps the lobby's nil check honest: a nil *store.Store wrapped in
// the interface would not compare equal to nil.
func recorder(st *store.Store) lobby.Recorder {
	if st == nil {
		return nil
	}
	return st
}

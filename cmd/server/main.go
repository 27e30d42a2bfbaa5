package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trivio-games/trivio-backend/internal/config"
	"github.com/trivio-games/trivio-backend/internal/httpapi"
	"github.com/trivio-games/trivio-backend/internal/hub"
	"github.com/trivio-games/trivio-backend/internal/lobby"
	"github.com/trivio-games/trivio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := buildLogger(cfg.Dev)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}
	if err := st.Seed(ctx); err != nil {
		logger.Fatal("seeding store", zap.Error(err))
	}

	// Speech synthesis lives client-side; the server just observes opens.
	speech := lobby.SpeechFunc(func(text string) {
		logger.Debug("clue opened", zap.String("clue", text))
	})

	h := hub.NewHub(ctx, cfg.ClueTimer, lobby.Deps{
		Logger: logger,
		Speech: speech,
		Sink:   st,
	})

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, st, logger)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		h.Inbox() <- hub.ShutdownHub{}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

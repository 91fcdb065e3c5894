package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/tjper/spacex/cmd/spacex/rest"
	ictx "github.com/tjper/spacex/context"
	"github.com/tjper/spacex/internal/config"
	"github.com/tjper/spacex/internal/favorites"
	"github.com/tjper/spacex/internal/healthz"
	"github.com/tjper/spacex/internal/launch"
	"github.com/tjper/spacex/internal/prefs"
	"github.com/tjper/spacex/internal/spacex"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

const (
	ecExit = iota
	_
	ecPrefsConnection
	ecServerAPI
	ecShutdown
)

const shutdownTimeout = 10 * time.Second

func run() int {
	ctx, cancel := ictx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	logger.Info("[Startup] Opening preference store ...", zap.String("backend", cfg.Prefs().Backend))
	store, err := prefs.Open(ctx, logger, cfg.Prefs())
	if err != nil {
		logger.Error(
			"[Startup] Failed to open preference store.",
			zap.Error(err),
		)
		return ecPrefsConnection
	}
	defer store.Close()
	logger.Info("[Startup] Opened preference store.")

	logger.Info("[Startup] Creating launch client ...")
	client := spacex.NewClient(
		logger,
		cfg.APIURL(),
		spacex.WithTimeout(cfg.RequestTimeout()),
	)
	logger.Info("[Startup] Created launch client.", zap.String("url", cfg.APIURL()))

	saved := favorites.NewStore(logger, store, favorites.WithKey(cfg.FavoritesKey()))
	list := launch.NewList(logger, client, cfg.PageSize())
	check := healthz.NewHTTP(logger, store)

	logger.Info("[Startup] Creating REST API ...")
	api := rest.NewAPI(logger, client, list, saved, check)
	logger.Info("[Startup] Created REST API.")

	logger.Info("[Startup] Launching server ...")
	srv := http.Server{
		Handler:      api.Mux,
		Addr:         fmt.Sprintf(":%d", cfg.Port()),
		ReadTimeout:  cfg.HTTPReadTimeout(),
		WriteTimeout: cfg.HTTPWriteTimeout(),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	check.Healthy()
	logger.Sugar().Infof("[Startup] spacex API listening at :%d", cfg.Port())

	select {
	case err := <-errs:
		logger.Error("[Startup] Failed to listen and serve server API.", zap.Error(err))
		return ecServerAPI
	case <-ctx.Done():
		if sig, ok := ictx.Signal(ctx); ok {
			logger.Info("[Shutdown] Received signal.", zap.Stringer("signal", sig))
		}
	}

	check.Sick()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("[Shutdown] Failed to shutdown server API.", zap.Error(err))
		return ecShutdown
	}
	logger.Info("[Shutdown] Server API stopped.")
	return ecExit
}

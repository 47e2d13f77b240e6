package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/banksajt/internal/config"
	"github.com/polkiloo/banksajt/internal/domain/repository"
	"github.com/polkiloo/banksajt/internal/metrics"
	"github.com/polkiloo/banksajt/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewBankFacade,
		newHTTPServer,
		newStorageProbe,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type probeParams struct {
	fx.In

	Storage repository.Factory
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

func newStorageProbe(p probeParams) *worker.StorageProbe {
	return worker.NewStorageProbe(p.Storage, p.Metrics, p.Config.HealthPollInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Probe      *worker.StorageProbe
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting banksajt", slog.String("addr", p.Server.Addr))
			p.Probe.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Probe.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("banksajt stopped")
			return nil
		},
	})
}

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/banksajt/internal/app"
	"github.com/polkiloo/banksajt/internal/config"
	"github.com/polkiloo/banksajt/internal/logger"
	"github.com/polkiloo/banksajt/internal/metrics"
	"github.com/polkiloo/banksajt/internal/pkg/auth"
	"github.com/polkiloo/banksajt/internal/server/http/handlers"
	"github.com/polkiloo/banksajt/internal/server/http/router"
	"github.com/polkiloo/banksajt/internal/storage"
	"github.com/polkiloo/banksajt/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.BankFacade) handlers.BankFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

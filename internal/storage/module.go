// Package storage selects and wires the persistence backend named by DATABASE_URI.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/banksajt/internal/config"
	"github.com/polkiloo/banksajt/internal/domain/repository"
	"github.com/polkiloo/banksajt/internal/storage/postgres"
	"github.com/polkiloo/banksajt/internal/storage/sqlite"
)

// Backend is a repository factory that owns a database handle.
type Backend interface {
	repository.Factory
	Close()
}

// Module wires the storage backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.Factory { return b },
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.AccountRepository { return f.Accounts() },
		func(f repository.Factory) repository.SessionRepository { return f.Sessions() },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
		st, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	openSQLite = func(ctx context.Context, path string, logger *slog.Logger) (Backend, error) {
		st, err := sqlite.New(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
)

func newBackend(p backendParams) (Backend, error) {
	dsn := p.Config.DatabaseURI
	if sqlite.Match(dsn) {
		return openSQLite(p.Ctx, sqlite.PathFromDSN(dsn), p.Logger.With(slog.String("storage", "sqlite")))
	}
	return openPostgres(p.Ctx, dsn, p.Logger.With(slog.String("storage", "postgres")))
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}

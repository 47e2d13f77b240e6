package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/banksajt/internal/domain/model"
)

// AccountFacade registers users.
type AccountFacade interface {
	CreateUser(ctx context.Context, username, password string) (*model.User, *model.Account, error)
}

// SessionFacade opens and resolves sessions.
type SessionFacade interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
	ResolveSession(ctx context.Context, token string) (*model.Session, error)
}

// BalanceFacade provides balance related operations.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	ApplyTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// HealthFacade reports storage reachability.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// BankFacade aggregates the full set of operations used across handlers.
type BankFacade interface {
	AccountFacade
	SessionFacade
	BalanceFacade
	HealthFacade
}

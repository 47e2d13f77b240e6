package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/banksajt/internal/domain/model"
)

// AccountFacadeStub simulates user registration.
type AccountFacadeStub struct {
	CreateUserFn func(context.Context, string, string) (*model.User, *model.Account, error)
}

// CreateUser returns user 1 with account 1 unless overridden.
func (s AccountFacadeStub) CreateUser(ctx context.Context, username, password string) (*model.User, *model.Account, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, &model.Account{ID: 1, UserID: 1}, nil
}

// SessionFacadeStub simulates login and token resolution.
type SessionFacadeStub struct {
	LoginFn   func(context.Context, string, string) (*model.Session, error)
	ResolveFn func(context.Context, string) (*model.Session, error)
}

// Login returns a fixed session unless overridden.
func (s SessionFacadeStub) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.Session{ID: 1, UserID: 1, Token: "123456"}, nil
}

// ResolveSession maps any token to user 1 unless overridden.
func (s SessionFacadeStub) ResolveSession(ctx context.Context, token string) (*model.Session, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return &model.Session{ID: 1, UserID: 1, Token: token}, nil
}

// BalanceFacadeStub simulates balance operations.
type BalanceFacadeStub struct {
	BalanceFn     func(context.Context, int64) (decimal.Decimal, error)
	TransactionFn func(context.Context, int64, decimal.Decimal) (decimal.Decimal, error)
}

// Balance returns zero unless overridden.
func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return decimal.Zero, nil
}

// ApplyTransaction echoes amount as the new balance unless overridden.
func (s BalanceFacadeStub) ApplyTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if s.TransactionFn != nil {
		return s.TransactionFn(ctx, userID, amount)
	}
	return amount, nil
}

// HealthFacadeStub returns Err from Ping.
type HealthFacadeStub struct {
	Err error
}

// Ping reports configured storage health.
func (s HealthFacadeStub) Ping(context.Context) error {
	return s.Err
}

// BankFacadeStub aggregates facade dependencies for HTTP layer tests.
type BankFacadeStub struct {
	AccountFacadeStub
	SessionFacadeStub
	BalanceFacadeStub
	HealthFacadeStub
}

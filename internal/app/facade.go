package app

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
	"github.com/polkiloo/banksajt/internal/metrics"
	"github.com/polkiloo/banksajt/internal/usecase"
)

// BankFacade exposes the bank use cases to transport layers and records domain metrics.
type BankFacade struct {
	accounts *usecase.AccountUseCase
	sessions *usecase.SessionUseCase
	balance  *usecase.BalanceUseCase
	storage  repository.Factory
	metrics  *metrics.Metrics
}

func NewBankFacade(accounts *usecase.AccountUseCase, sessions *usecase.SessionUseCase, balance *usecase.BalanceUseCase, storage repository.Factory, m *metrics.Metrics) *BankFacade {
	return &BankFacade{accounts: accounts, sessions: sessions, balance: balance, storage: storage, metrics: m}
}

func (f *BankFacade) CreateUser(ctx context.Context, username, password string) (*model.User, *model.Account, error) {
	user, account, err := f.accounts.CreateUser(ctx, username, password)
	if err != nil {
		return nil, nil, err
	}
	f.metrics.UserCreated()
	return user, account, nil
}

func (f *BankFacade) Login(ctx context.Context, username, password string) (*model.Session, error) {
	sess, err := f.sessions.Login(ctx, username, password)
	f.metrics.LoginAttempt(loginResult(err))
	return sess, err
}

func (f *BankFacade) ResolveSession(ctx context.Context, token string) (*model.Session, error) {
	return f.sessions.Resolve(ctx, token)
}

func (f *BankFacade) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return f.balance.Balance(ctx, userID)
}

func (f *BankFacade) ApplyTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := f.balance.ApplyTransaction(ctx, userID, amount)
	if err != nil {
		return decimal.Zero, err
	}
	f.metrics.TransactionApplied()
	return balance, nil
}

// Ping checks storage connectivity.
func (f *BankFacade) Ping(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return metrics.LoginSuccess
	case errors.Is(err, domainErrors.ErrUserNotFound):
		return metrics.LoginUserNotFound
	case errors.Is(err, domainErrors.ErrInvalidPassword):
		return metrics.LoginInvalidPassword
	default:
		return metrics.LoginError
	}
}

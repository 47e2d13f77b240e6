package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/repository"
)

// BalanceUseCase reads and adjusts account balances.
type BalanceUseCase struct {
	accounts repository.AccountRepository
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(accounts repository.AccountRepository) *BalanceUseCase {
	return &BalanceUseCase{accounts: accounts}
}

// Balance returns the stored amount of the user's account.
func (u *BalanceUseCase) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	acc, err := u.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, accountError(err)
	}
	return acc.Amount, nil
}

// ApplyTransaction adds amount to the user's account, persists it and returns the new balance.
// Negative amounts withdraw; no overdraft check is made.
func (u *BalanceUseCase) ApplyTransaction(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	acc, err := u.accounts.AddAmount(ctx, userID, amount)
	if err != nil {
		return decimal.Zero, accountError(err)
	}
	return acc.Amount, nil
}

func accountError(err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrAccountNotFound
	}
	return err
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/banksajt/internal/domain/model"
)

// AccountRepository reads and mutates account balances.
type AccountRepository interface {
	// GetByUserID returns the oldest account of the user.
	GetByUserID(ctx context.Context, userID int64) (*model.Account, error)
	// AddAmount atomically adds delta to the oldest account of the user and returns it.
	AddAmount(ctx context.Context, userID int64, delta decimal.Decimal) (*model.Account, error)
}

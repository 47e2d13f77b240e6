package repository

import (
	"context"

	"github.com/polkiloo/banksajt/internal/domain/model"
)

// UserRepository persists users together with their accounts.
type UserRepository interface {
	// CreateWithAccount stores a user and its zero-balance account in one transaction.
	CreateWithAccount(ctx context.Context, username, passwordHash string) (*model.User, *model.Account, error)
	// GetByUsername returns the oldest user with the given username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

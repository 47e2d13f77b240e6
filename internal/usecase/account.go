package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
	pkgAuth "github.com/polkiloo/banksajt/internal/pkg/auth"
)

// AccountUseCase registers users together with their zero-balance account.
type AccountUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *AccountUseCase {
	return &AccountUseCase{users: users, hasher: hasher}
}

// CreateUser stores a new user and its account. Duplicate usernames are allowed.
func (u *AccountUseCase) CreateUser(ctx context.Context, username, password string) (*model.User, *model.Account, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}
	return u.users.CreateWithAccount(ctx, username, hash)
}

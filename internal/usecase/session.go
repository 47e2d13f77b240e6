package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
	pkgAuth "github.com/polkiloo/banksajt/internal/pkg/auth"
)

// SessionUseCase handles login and bearer token resolution.
type SessionUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.TokenGenerator
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(users repository.UserRepository, sessions repository.SessionRepository, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenGenerator) *SessionUseCase {
	return &SessionUseCase{users: users, sessions: sessions, hasher: hasher, tokens: tokens}
}

// Login validates credentials and opens a new session.
func (u *SessionUseCase) Login(ctx context.Context, username, password string) (*model.Session, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordMismatch) {
			return nil, domainErrors.ErrInvalidPassword
		}
		return nil, err
	}

	token, err := u.tokens.Generate()
	if err != nil {
		return nil, err
	}

	return u.sessions.Create(ctx, usr.ID, token)
}

// Resolve returns the session identified by token.
func (u *SessionUseCase) Resolve(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, domainErrors.ErrInvalidToken
	}
	sess, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidToken
		}
		return nil, err
	}
	return sess, nil
}

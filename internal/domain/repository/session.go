package repository

import (
	"context"

	"github.com/polkiloo/banksajt/internal/domain/model"
)

// SessionRepository stores login sessions.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string) (*model.Session, error)
	// GetByToken returns the oldest session carrying token.
	GetByToken(ctx context.Context, token string) (*model.Session, error)
}

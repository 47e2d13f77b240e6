package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Accounts() AccountRepository
	Sessions() SessionRepository
	HealthCheck(ctx context.Context) error
}

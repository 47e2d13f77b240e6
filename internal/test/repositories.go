package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
)

// UserRepositoryStub stores users in insertion order for tests.
type UserRepositoryStub struct {
	Users    []*model.User
	Accounts []*model.Account
	Next     int64
	Err      error
}

// NewUserRepositoryStub constructs stub repository starting ids at 1.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Next: 1}
}

// CreateWithAccount appends the user and a zero-balance account sharing the same id.
func (s *UserRepositoryStub) CreateWithAccount(ctx context.Context, username, passwordHash string) (*model.User, *model.Account, error) {
	if s.Err != nil {
		return nil, nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	account := &model.Account{ID: s.Next, UserID: s.Next, Amount: decimal.Zero}
	s.Next++
	s.Users = append(s.Users, user)
	s.Accounts = append(s.Accounts, account)
	return user, account, nil
}

// GetByUsername returns the first user stored with username.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// AccountRepositoryStub keeps one account per user id.
type AccountRepositoryStub struct {
	mu       sync.Mutex
	Accounts map[int64]*model.Account
	Err      error
	AddFn    func(context.Context, int64, decimal.Decimal) (*model.Account, error)
}

// GetByUserID returns a copy of the stored account.
func (s *AccountRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	acc, ok := s.Accounts[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

// AddAmount increments the stored amount unless AddFn overrides it.
func (s *AccountRepositoryStub) AddAmount(ctx context.Context, userID int64, delta decimal.Decimal) (*model.Account, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, delta)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	acc, ok := s.Accounts[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	acc.Amount = acc.Amount.Add(delta)
	cp := *acc
	return &cp, nil
}

// SessionRepositoryStub records sessions in insertion order.
type SessionRepositoryStub struct {
	Sessions  []*model.Session
	CreateErr error
	GetErr    error
}

// Create appends a session with the next id.
func (s *SessionRepositoryStub) Create(ctx context.Context, userID int64, token string) (*model.Session, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	sess := &model.Session{ID: int64(len(s.Sessions) + 1), UserID: userID, Token: token}
	s.Sessions = append(s.Sessions, sess)
	return sess, nil
}

// GetByToken returns the oldest session with token.
func (s *SessionRepositoryStub) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, sess := range s.Sessions {
		if sess.Token == token {
			return sess, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// BackendStub is a repository factory with a controllable health check.
type BackendStub struct {
	UserRepo    repository.UserRepository
	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	HealthErr   error
	Closed      bool
}

func (b *BackendStub) Users() repository.UserRepository       { return b.UserRepo }
func (b *BackendStub) Accounts() repository.AccountRepository { return b.AccountRepo }
func (b *BackendStub) Sessions() repository.SessionRepository { return b.SessionRepo }

// HealthCheck returns HealthErr.
func (b *BackendStub) HealthCheck(context.Context) error { return b.HealthErr }

// Close marks the stub closed.
func (b *BackendStub) Close() { b.Closed = true }

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.AccountRepository = (*AccountRepositoryStub)(nil)
	_ repository.SessionRepository = (*SessionRepositoryStub)(nil)
	_ repository.Factory           = (*BackendStub)(nil)
)

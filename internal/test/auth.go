package test

import (
	"context"
	"sync"

	"github.com/polkiloo/banksajt/internal/domain/model"
	pkgAuth "github.com/polkiloo/banksajt/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return pkgAuth.ErrPasswordMismatch
	}
	return nil
}

// TokenGeneratorStub hands out configured tokens in order, repeating the last one.
type TokenGeneratorStub struct {
	mu     sync.Mutex
	Tokens []string
	Err    error
	calls  int
}

// Generate returns the next configured token.
func (g *TokenGeneratorStub) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	if len(g.Tokens) == 0 {
		return "123456", nil
	}
	idx := g.calls
	if idx >= len(g.Tokens) {
		idx = len(g.Tokens) - 1
	}
	g.calls++
	return g.Tokens[idx], nil
}

// SessionResolverStub implements the middleware session lookup contract.
type SessionResolverStub struct {
	Session   *model.Session
	Err       error
	ResolveFn func(context.Context, string) (*model.Session, error)
}

// ResolveSession either delegates to override or returns predefined result.
func (s SessionResolverStub) ResolveSession(ctx context.Context, token string) (*model.Session, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return &model.Session{ID: 1, UserID: 1, Token: token}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.TokenGenerator = (*TokenGeneratorStub)(nil)

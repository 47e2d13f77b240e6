package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

const healthCheckTimeout = 2 * time.Second

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type accountRepository struct {
	storage *Storage
}

type sessionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("postgres storage ready", slog.String("host", cfg.ConnConfig.Host), slog.String("database", cfg.ConnConfig.Database))

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS accounts (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount NUMERIC NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS sessions (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            token TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username, id)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id, id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token, id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) CreateWithAccount(ctx context.Context, username, passwordHash string) (*model.User, *model.Account, error) {
	const insertUser = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	const insertAccount = `INSERT INTO accounts (user_id, amount) VALUES ($1, $2::numeric) RETURNING id`

	u := model.User{Username: username, PasswordHash: passwordHash}
	acc := model.Account{Amount: decimal.Zero}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertUser, username, passwordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		acc.UserID = u.ID
		if err := tx.QueryRow(ctx, insertAccount, u.ID, acc.Amount.String()).Scan(&acc.ID); err != nil {
			return fmt.Errorf("insert account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &u, &acc, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username=$1 ORDER BY id LIMIT 1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) GetByUserID(ctx context.Context, userID int64) (*model.Account, error) {
	const query = `SELECT id, user_id, amount::text FROM accounts WHERE user_id=$1 ORDER BY id LIMIT 1`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *accountRepository) AddAmount(ctx context.Context, userID int64, delta decimal.Decimal) (*model.Account, error) {
	// The UPDATE row lock serializes concurrent increments on the same account.
	const query = `UPDATE accounts SET amount = amount + $2::numeric
                   WHERE id = (SELECT id FROM accounts WHERE user_id=$1 ORDER BY id LIMIT 1)
                   RETURNING id, user_id, amount::text`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, userID, delta.String()))
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	var (
		acc    model.Account
		amount string
	)
	if err := row.Scan(&acc.ID, &acc.UserID, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	acc.Amount = parsed
	return &acc, nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, userID int64, token string) (*model.Session, error) {
	const query = `INSERT INTO sessions (user_id, token) VALUES ($1, $2) RETURNING id, created_at`
	sess := model.Session{UserID: userID, Token: token}
	if err := r.storage.pool.QueryRow(ctx, query, userID, token).Scan(&sess.ID, &sess.CreatedAt); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	const query = `SELECT id, user_id, token, created_at FROM sessions WHERE token=$1 ORDER BY id LIMIT 1`
	var sess model.Session
	err := r.storage.pool.QueryRow(ctx, query, token).Scan(&sess.ID, &sess.UserID, &sess.Token, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return s.pool.Ping(ctx)
}

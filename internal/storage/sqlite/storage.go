// Package sqlite provides an embedded SQLite backend for the bank repositories,
// used for local runs and end-to-end tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"

	domainErrors "github.com/polkiloo/banksajt/internal/domain/errors"
	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/domain/repository"
)

// Scheme prefixes DATABASE_URI values handled by this backend.
const Scheme = "sqlite:"

const memoryPath = ":memory:"

// Match reports whether dsn addresses a SQLite database.
func Match(dsn string) bool {
	return strings.HasPrefix(dsn, Scheme)
}

// PathFromDSN strips the scheme from dsn: "sqlite://bank.db" -> "bank.db", "sqlite::memory:" -> ":memory:".
func PathFromDSN(dsn string) string {
	return strings.TrimPrefix(strings.TrimPrefix(dsn, Scheme), "//")
}

// Storage implements the repository factory on top of a single SQLite connection.
type Storage struct {
	db     *sql.DB
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

// New opens (creating if needed) the database at path and prepares the schema.
func New(ctx context.Context, path string, logger *slog.Logger) (*Storage, error) {
	if path == "" {
		return nil, errors.New("sqlite path must not be empty")
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection serializes writers and keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	storage := &Storage{db: db, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("sqlite storage ready", slog.String("path", path))

	return storage, nil
}

// Close releases the database handle.
func (s *Storage) Close() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		s.logger.Error("close sqlite", slog.String("error", err.Error()))
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

// HealthCheck verifies the database handle is usable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS accounts (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL REFERENCES users(id),
            amount TEXT NOT NULL DEFAULT '0'
        )`,
		`CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL REFERENCES users(id),
            token TEXT NOT NULL,
            created_at INTEGER NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username, id)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id, id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token, id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes fn inside a transaction, committing on success.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

// --- UserRepository implementation ---

func (r *userRepository) CreateWithAccount(ctx context.Context, username, passwordHash string) (*model.User, *model.Account, error) {
	now := time.Now().UTC().Truncate(time.Second)
	u := model.User{Username: username, PasswordHash: passwordHash, CreatedAt: now}
	acc := model.Account{Amount: decimal.Zero}

	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
			username, passwordHash, now.Unix())
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		if u.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		acc.UserID = u.ID
		res, err = tx.ExecContext(ctx, `INSERT INTO accounts (user_id, amount) VALUES (?, ?)`, u.ID, acc.Amount.String())
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}
		acc.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &u, &acc, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username = ? ORDER BY id LIMIT 1`
	var (
		u         model.User
		createdAt int64
	)
	err := r.storage.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &u, nil
}

// --- AccountRepository implementation ---

const selectAccount = `SELECT id, user_id, amount FROM accounts WHERE user_id = ? ORDER BY id LIMIT 1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	var (
		acc    model.Account
		amount string
	)
	if err := row.Scan(&acc.ID, &acc.UserID, &amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

func (r *accountRepository) GetByUserID(ctx context.Context, userID int64) (*model.Account, error) {
	return scanAccount(r.storage.db.QueryRowContext(ctx, selectAccount, userID))
}

func (r *accountRepository) AddAmount(ctx context.Context, userID int64, delta decimal.Decimal) (*model.Account, error) {
	var acc *model.Account
	err := r.storage.WithinTransaction(ctx, func(tx *sql.Tx) error {
		current, err := scanAccount(tx.QueryRowContext(ctx, selectAccount, userID))
		if err != nil {
			return err
		}
		current.Amount = current.Amount.Add(delta)
		if _, err := tx.ExecContext(ctx, `UPDATE accounts SET amount = ? WHERE id = ?`, current.Amount.String(), current.ID); err != nil {
			return fmt.Errorf("update amount: %w", err)
		}
		acc = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, userID int64, token string) (*model.Session, error) {
	now := time.Now().UTC().Truncate(time.Second)
	res, err := r.storage.db.ExecContext(ctx, `INSERT INTO sessions (user_id, token, created_at) VALUES (?, ?, ?)`,
		userID, token, now.Unix())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Session{ID: id, UserID: userID, Token: token, CreatedAt: now}, nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	const query = `SELECT id, user_id, token, created_at FROM sessions WHERE token = ? ORDER BY id LIMIT 1`
	var (
		sess      model.Session
		createdAt int64
	)
	err := r.storage.db.QueryRowContext(ctx, query, token).Scan(&sess.ID, &sess.UserID, &sess.Token, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	sess.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &sess, nil
}

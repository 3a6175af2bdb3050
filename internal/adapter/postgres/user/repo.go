// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguatrack/backend/internal/adapter/postgres"
	"github.com/linguatrack/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, password_hash, telegram_id, telegram_username, created_at`

const getByIDSQL = `
SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + ` FROM users WHERE username = $1`

const getByTelegramIDSQL = `
SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

const insertSQL = `
INSERT INTO users (id, username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`

const linkTelegramSQL = `
UPDATE users SET telegram_id = $2, telegram_username = $3 WHERE id = $1`

const listWithTelegramSQL = `
SELECT ` + userColumns + ` FROM users WHERE telegram_id IS NOT NULL`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetByTelegramID returns the user linked to the given Telegram account.
func (r *Repo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByTelegramIDSQL, telegramID))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// Create inserts a new user.
// A duplicate username or email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL, u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	return nil
}

// LinkTelegram attaches a Telegram account to the user. Passing nil values
// unlinks it.
// A Telegram ID already linked to another user results in domain.ErrAlreadyExists.
func (r *Repo) LinkTelegram(ctx context.Context, userID uuid.UUID, telegramID *int64, telegramUsername *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, linkTelegramSQL, userID, telegramID, telegramUsername)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ListWithTelegram returns all users with a linked Telegram account.
// Used by the reminder scheduler.
func (r *Repo) ListWithTelegram(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listWithTelegramSQL)
	if err != nil {
		return nil, fmt.Errorf("list users with telegram: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.TelegramID, &u.TelegramUsername, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.TelegramID, &u.TelegramUsername, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

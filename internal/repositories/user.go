package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

// ErrDuplicateEmail is returned when an insert hits the unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, username, password_hash, verified, code, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new unverified user and returns the generated id.
// A unique-constraint hit maps to ErrDuplicateEmail so callers can tell
// duplicates apart from other storage failures.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash, code string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, verified, code, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, NOW(), NOW())
		RETURNING user_id
	`

	var userID uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &userID, query, email, username, passwordHash, code)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return uuid.Nil, ErrDuplicateEmail
	}
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// UpdateDetails overwrites username and password hash for the given email.
func (r *UserWriteRepository) UpdateDetails(ctx context.Context, email, username, passwordHash string) error {
	const query = `
		UPDATE users
		SET username = $2, password_hash = $3, updated_at = NOW()
		WHERE email = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, email, username, passwordHash)
	if err != nil {
		logger.Log.Errorw("failed to update user details", "email", email, "error", err)
	}
	return err
}

// SetVerified flips the verified flag and clears the pending code.
func (r *UserWriteRepository) SetVerified(ctx context.Context, email string) error {
	const query = `
		UPDATE users
		SET verified = TRUE, code = NULL, updated_at = NOW()
		WHERE email = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, email)
	if err != nil {
		logger.Log.Errorw("failed to mark user verified", "email", email, "error", err)
	}
	return err
}

// SetCode stores a fresh verification code for the given email.
func (r *UserWriteRepository) SetCode(ctx context.Context, email, code string) error {
	const query = `
		UPDATE users
		SET code = $2, updated_at = NOW()
		WHERE email = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, email, code)
	if err != nil {
		logger.Log.Errorw("failed to store verification code", "email", email, "error", err)
	}
	return err
}

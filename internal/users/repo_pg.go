package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, first_name, last_name, username, email, password_hash, phone, is_reviewer, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.IsReviewer,
	)
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, first_name, last_name, username, email, password_hash, phone, is_reviewer, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, first_name, last_name, username, email, password_hash, phone, is_reviewer, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.IsReviewer,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

// isUniqueViolation matches the postgres unique_violation SQLSTATE without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

var _ Repo = (*PGRepo)(nil)

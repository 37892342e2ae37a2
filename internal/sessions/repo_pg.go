package sessions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, user_id, email, login_time, logout_time)
VALUES ($1, $2, $3, $4, NULL)`
	_, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Email,
		session.LoginTime,
	)
	return err
}

func (r *PGRepo) GetOpen(ctx context.Context, token string) (Session, error) {
	const query = `
SELECT id, user_id, email, login_time, logout_time
FROM sessions
WHERE id = $1 AND logout_time IS NULL
LIMIT 1`
	var (
		session Session
		logout  sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&session.ID,
		&session.UserID,
		&session.Email,
		&session.LoginTime,
		&logout,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if logout.Valid {
		session.LogoutTime = &logout.Time
	}
	return session, nil
}

func (r *PGRepo) CloseForUser(ctx context.Context, userID string, at time.Time) error {
	const query = `
UPDATE sessions
SET logout_time = $2
WHERE user_id = $1 AND logout_time IS NULL`
	_, err := r.DB.ExecContext(ctx, query, userID, at)
	return err
}

func (r *PGRepo) LatestLoginByEmail(ctx context.Context, email string) (time.Time, error) {
	const query = `
SELECT login_time
FROM sessions
WHERE email = $1
ORDER BY login_time DESC
LIMIT 1`
	return r.scanTime(ctx, query, email)
}

func (r *PGRepo) LatestLogoutByEmail(ctx context.Context, email string) (time.Time, error) {
	const query = `
SELECT logout_time
FROM sessions
WHERE email = $1 AND logout_time IS NOT NULL
ORDER BY logout_time DESC
LIMIT 1`
	return r.scanTime(ctx, query, email)
}

func (r *PGRepo) scanTime(ctx context.Context, query, email string) (time.Time, error) {
	var t time.Time
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return t, nil
}

var _ Repo = (*PGRepo)(nil)

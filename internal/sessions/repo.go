package sessions

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Repo interface {
	Create(ctx context.Context, session Session) error
	// GetOpen returns the session with the given token only if it has not
	// been logged out.
	GetOpen(ctx context.Context, token string) (Session, error)
	// CloseForUser stamps logout_time on the user's open sessions. Closing
	// an already closed session is a no-op.
	CloseForUser(ctx context.Context, userID string, at time.Time) error
	LatestLoginByEmail(ctx context.Context, email string) (time.Time, error)
	LatestLogoutByEmail(ctx context.Context, email string) (time.Time, error)
}

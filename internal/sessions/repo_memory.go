package sessions

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	byToken  map[string]Session
	ordering []string // tokens in insertion order
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byToken: make(map[string]Session)}
}

func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[session.ID] = session
	r.ordering = append(r.ordering, session.ID)
	return nil
}

func (r *MemoryRepo) GetOpen(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.byToken[token]
	if !ok || session.LogoutTime != nil {
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (r *MemoryRepo) CloseForUser(ctx context.Context, userID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, session := range r.byToken {
		if session.UserID == userID && session.LogoutTime == nil {
			closed := at
			session.LogoutTime = &closed
			r.byToken[token] = session
		}
	}
	return nil
}

func (r *MemoryRepo) LatestLoginByEmail(ctx context.Context, email string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest time.Time
	found := false
	for _, session := range r.byToken {
		if !strings.EqualFold(session.Email, email) {
			continue
		}
		if !found || session.LoginTime.After(latest) {
			latest = session.LoginTime
			found = true
		}
	}
	if !found {
		return time.Time{}, ErrNotFound
	}
	return latest, nil
}

func (r *MemoryRepo) LatestLogoutByEmail(ctx context.Context, email string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest time.Time
	found := false
	for _, session := range r.byToken {
		if !strings.EqualFold(session.Email, email) || session.LogoutTime == nil {
			continue
		}
		if !found || session.LogoutTime.After(latest) {
			latest = *session.LogoutTime
			found = true
		}
	}
	if !found {
		return time.Time{}, ErrNotFound
	}
	return latest, nil
}

var _ Repo = (*MemoryRepo)(nil)

package users

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string // email -> id
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailTaken
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

var _ Repo = (*MemoryRepo)(nil)

package comments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Comment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Comment)}
}

func (r *MemoryRepo) Create(ctx context.Context, comment Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[comment.ID] = comment
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Comment, error) {
	if err := ctx.Err(); err != nil {
		return Comment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) Update(ctx context.Context, comment Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[comment.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Comment = comment.Comment
	existing.UpdatedAt = comment.UpdatedAt
	r.byID[comment.ID] = existing
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []Comment
	for _, c := range r.byID {
		if c.ResumeID == resumeID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

var _ Repo = (*MemoryRepo)(nil)

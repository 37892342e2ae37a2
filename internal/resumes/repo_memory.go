package resumes

import (
	"context"
	"errors"
	"strings"
	"sync"

	"resume-builder/internal/profile"
)

// MemoryRepo is an in-memory implementation of Repo. Entity groups are
// delegated to the shared profile repository so field lookups see the
// generated data in memory mode too.
type MemoryRepo struct {
	mu      sync.RWMutex
	rows    map[string]Resume
	order   []string // resume ids, oldest first
	profile *profile.MemoryRepo
}

func NewMemoryRepo(profileRepo *profile.MemoryRepo) *MemoryRepo {
	return &MemoryRepo{
		rows:    make(map[string]Resume),
		profile: profileRepo,
	}
}

func (r *MemoryRepo) CreateGeneration(ctx context.Context, gen Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.profile.AddEducation(ctx, gen.Education...); err != nil {
		return err
	}
	for _, e := range gen.Experience {
		if err := r.profile.AddExperience(ctx, e); err != nil {
			return err
		}
	}
	if err := r.profile.AddSkills(ctx, gen.Skills...); err != nil {
		return err
	}
	if err := r.profile.AddCertificates(ctx, gen.Certificates...); err != nil {
		return err
	}
	if err := r.profile.AddProjects(ctx, gen.Projects...); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[gen.Resume.ID] = gen.Resume
	r.order = append(r.order, gen.Resume.ID)
	return nil
}

func (r *MemoryRepo) AttachArtifact(ctx context.Context, resumeID, artifactKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.rows[resumeID]
	if !ok {
		return ErrNotFound
	}
	res.ArtifactKey = artifactKey
	r.rows[resumeID] = res
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.rows[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return res, nil
}

func (r *MemoryRepo) LatestByUser(ctx context.Context, userID string) (Resume, error) {
	return r.latest(ctx, func(res Resume) bool { return res.UserID == userID })
}

func (r *MemoryRepo) LatestByEmail(ctx context.Context, email string) (Resume, error) {
	return r.latest(ctx, func(res Resume) bool { return strings.EqualFold(res.Email, email) })
}

func (r *MemoryRepo) latest(ctx context.Context, match func(Resume) bool) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.order) - 1; i >= 0; i-- {
		if res, ok := r.rows[r.order[i]]; ok && match(res) {
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

func (r *MemoryRepo) Update(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[res.ID]
	if !ok || cur.UserID != res.UserID {
		return ErrNotFound
	}
	cur.FirstName = res.FirstName
	cur.LastName = res.LastName
	cur.Email = res.Email
	cur.Phone = res.Phone
	cur.LinkedURL = res.LinkedURL
	cur.Skills = res.Skills
	r.rows[res.ID] = cur
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.rows[id]
	if !ok || res.UserID != userID {
		return ErrNotFound
	}
	delete(r.rows, id)
	for i, rid := range r.order {
		if rid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resumes := make([]Resume, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if res, ok := r.rows[r.order[i]]; ok {
			resumes = append(resumes, res)
		}
	}
	return resumes, nil
}

func (r *MemoryRepo) LinkedInByEmail(ctx context.Context, email string) (string, error) {
	res, err := r.LatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", profile.ErrNotFound
		}
		return "", err
	}
	return res.LinkedURL, nil
}

var _ Repo = (*MemoryRepo)(nil)

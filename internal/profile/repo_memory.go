package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. It also backs resume
// generation in memory mode, which appends entity groups through the Add
// helpers.
type MemoryRepo struct {
	mu           sync.RWMutex
	education    map[string][]Education // keyed by user id
	experience   map[string][]Experience
	skills       map[string][]Skill
	certificates map[string][]Certificate
	projects     map[string][]Project
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		education:    make(map[string][]Education),
		experience:   make(map[string][]Experience),
		skills:       make(map[string][]Skill),
		certificates: make(map[string][]Certificate),
		projects:     make(map[string][]Project),
	}
}

func (r *MemoryRepo) EducationByUser(ctx context.Context, userID string) ([]Education, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Education(nil), r.education[userID]...), nil
}

func (r *MemoryRepo) ExperienceByUser(ctx context.Context, userID string) ([]Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Experience(nil), r.experience[userID]...), nil
}

func (r *MemoryRepo) SkillsByUser(ctx context.Context, userID string) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Skill(nil), r.skills[userID]...), nil
}

func (r *MemoryRepo) CertificatesByUser(ctx context.Context, userID string) ([]Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Certificate(nil), r.certificates[userID]...), nil
}

func (r *MemoryRepo) ProjectsByUser(ctx context.Context, userID string) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Project(nil), r.projects[userID]...), nil
}

func (r *MemoryRepo) AddEducation(ctx context.Context, entries ...Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.education[e.UserID] = append(r.education[e.UserID], e)
	}
	return nil
}

func (r *MemoryRepo) AddExperience(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.experience[exp.UserID] = append(r.experience[exp.UserID], exp)
	return nil
}

func (r *MemoryRepo) AddSkills(ctx context.Context, entries ...Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range entries {
		r.skills[s.UserID] = append(r.skills[s.UserID], s)
	}
	return nil
}

func (r *MemoryRepo) AddCertificates(ctx context.Context, entries ...Certificate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cert := range entries {
		r.certificates[cert.UserID] = append(r.certificates[cert.UserID], cert)
	}
	return nil
}

func (r *MemoryRepo) AddProjects(ctx context.Context, entries ...Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range entries {
		r.projects[p.UserID] = append(r.projects[p.UserID], p)
	}
	return nil
}

func (r *MemoryRepo) GetExperience(ctx context.Context, id string) (Experience, error) {
	if err := ctx.Err(); err != nil {
		return Experience{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entries := range r.experience {
		for _, e := range entries {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return Experience{}, ErrNotFound
}

func (r *MemoryRepo) UpdateExperience(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.experience[exp.UserID]
	for i, e := range entries {
		if e.ID == exp.ID {
			entries[i] = exp
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) DeleteExperience(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.experience[userID]
	for i, e := range entries {
		if e.ID == id {
			r.experience[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)

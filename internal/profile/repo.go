package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile entry not found")

type Repo interface {
	EducationByUser(ctx context.Context, userID string) ([]Education, error)
	ExperienceByUser(ctx context.Context, userID string) ([]Experience, error)
	SkillsByUser(ctx context.Context, userID string) ([]Skill, error)
	CertificatesByUser(ctx context.Context, userID string) ([]Certificate, error)
	ProjectsByUser(ctx context.Context, userID string) ([]Project, error)

	AddExperience(ctx context.Context, exp Experience) error
	GetExperience(ctx context.Context, id string) (Experience, error)
	UpdateExperience(ctx context.Context, exp Experience) error
	// DeleteExperience removes the entry only when it belongs to userID.
	DeleteExperience(ctx context.Context, userID, id string) error
}

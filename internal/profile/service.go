package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/sessions"
	"resume-builder/internal/users"
)

var ErrUnknownField = errors.New("unknown profile field")

// LinkedInSource yields the LinkedIn URL captured with the user's latest
// resume. Wired from the resumes package at bootstrap. Implementations
// report a missing resume as ErrNotFound so the lookup can answer 404.
type LinkedInSource interface {
	LinkedInByEmail(ctx context.Context, email string) (string, error)
}

// Service answers field lookups by email and manages experience entries.
type Service struct {
	Repo     Repo
	Users    users.Repo
	Sessions sessions.Repo
	LinkedIn LinkedInSource
}

func NewService(repo Repo, userRepo users.Repo, sessionRepo sessions.Repo, linkedIn LinkedInSource) *Service {
	return &Service{Repo: repo, Users: userRepo, Sessions: sessionRepo, LinkedIn: linkedIn}
}

// FieldByEmail resolves a single profile field for the given email. The
// skill argument narrows a skills lookup to one proficiency level.
func (s *Service) FieldByEmail(ctx context.Context, email, field, skill string) (any, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	switch field {
	case "education":
		return s.Repo.EducationByUser(ctx, user.ID)
	case "experience":
		return s.Repo.ExperienceByUser(ctx, user.ID)
	case "skills":
		entries, err := s.Repo.SkillsByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if skill == "" {
			return entries, nil
		}
		for _, entry := range entries {
			if strings.EqualFold(entry.Name, skill) {
				return entry.Proficiency, nil
			}
		}
		return nil, fmt.Errorf("%w: skill %q", ErrNotFound, skill)
	case "certificates":
		return s.Repo.CertificatesByUser(ctx, user.ID)
	case "projects":
		return s.Repo.ProjectsByUser(ctx, user.ID)
	case "phone":
		return user.Phone, nil
	case "linkedin":
		return s.LinkedIn.LinkedInByEmail(ctx, email)
	case "login_time":
		t, err := s.Sessions.LatestLoginByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				return nil, fmt.Errorf("%w: no login recorded", ErrNotFound)
			}
			return nil, err
		}
		return t, nil
	case "logout_time":
		t, err := s.Sessions.LatestLogoutByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				return nil, fmt.Errorf("%w: no logout recorded", ErrNotFound)
			}
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// ExperienceInput carries the mutable experience fields.
type ExperienceInput struct {
	Company     string
	Role        string
	StartDate   string
	EndDate     string
	Description string
}

func (s *Service) AddExperience(ctx context.Context, email string, in ExperienceInput) (Experience, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return Experience{}, err
	}
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Role) == "" {
		return Experience{}, fmt.Errorf("%w: company and role are required", users.ErrInvalidInput)
	}

	exp := Experience{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Email:           user.Email,
		Company:         strings.TrimSpace(in.Company),
		Role:            strings.TrimSpace(in.Role),
		StartDate:       strings.TrimSpace(in.StartDate),
		EndDate:         strings.TrimSpace(in.EndDate),
		FullDescription: strings.TrimSpace(in.Description),
	}
	if err := s.Repo.AddExperience(ctx, exp); err != nil {
		return Experience{}, err
	}
	return exp, nil
}

func (s *Service) UpdateExperience(ctx context.Context, email, id string, in ExperienceInput) (Experience, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return Experience{}, err
	}

	exp, err := s.Repo.GetExperience(ctx, id)
	if err != nil {
		return Experience{}, err
	}
	if exp.UserID != user.ID {
		return Experience{}, ErrNotFound
	}

	if v := strings.TrimSpace(in.Company); v != "" {
		exp.Company = v
	}
	if v := strings.TrimSpace(in.Role); v != "" {
		exp.Role = v
	}
	if v := strings.TrimSpace(in.StartDate); v != "" {
		exp.StartDate = v
	}
	if v := strings.TrimSpace(in.EndDate); v != "" {
		exp.EndDate = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		exp.FullDescription = v
	}
	if err := s.Repo.UpdateExperience(ctx, exp); err != nil {
		return Experience{}, err
	}
	return exp, nil
}

func (s *Service) DeleteExperience(ctx context.Context, email, id string) error {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.Repo.DeleteExperience(ctx, user.ID, id)
}

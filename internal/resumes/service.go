package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/augment"
	"resume-builder/internal/export"
	"resume-builder/internal/profile"
	"resume-builder/internal/render"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/internal/users"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoArtifact means the resume exists but was never exported.
	ErrNoArtifact = errors.New("no exported resume")
	// ErrExportFailed marks a converter failure, distinct from storage
	// problems.
	ErrExportFailed = errors.New("pdf export failed")
)

// Service drives resume generation: parse the form, augment every
// experience, persist the bundle, render HTML and optionally export a
// PDF artifact to object storage.
type Service struct {
	Repo     Repo
	Users    users.Repo
	Profile  profile.Repo
	Augment  *augment.Service
	Store    object.ObjectStore
	Exporter export.Exporter
}

func NewService(repo Repo, userRepo users.Repo, profileRepo profile.Repo, augmentSvc *augment.Service, store object.ObjectStore, exporter export.Exporter) *Service {
	return &Service{Repo: repo, Users: userRepo, Profile: profileRepo, Augment: augmentSvc, Store: store, Exporter: exporter}
}

// GenerateInput carries the resume form. Entity groups arrive as parallel
// arrays straight from the HTML form.
type GenerateInput struct {
	Degrees         []string
	Institutions    []string
	EduStartDates   []string
	EduEndDates     []string
	Companies       []string
	Roles           []string
	ExpStartDates   []string
	ExpEndDates     []string
	Descriptions    []string
	Skills          string
	LinkedURL       string
	JobDescription  string
	CertNames       []string
	CertIssuers     []string
	CertIssueDates  []string
	CertExpiryDates []string
	ProjectNames    []string
	GithubLinks     []string
}

// Generated is the outcome of one generation run.
type Generated struct {
	Resume      Resume
	Detail      Detail
	View        render.Resume
	HTML        []byte
	DownloadURL string
}

// Generate runs the full pipeline for the logged-in user. Augmentation
// happens before anything is persisted, so a provider failure leaves no
// partial state behind.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (*Generated, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	education := profile.ParseEducation(in.Degrees, in.Institutions, in.EduStartDates, in.EduEndDates)
	experience := profile.ParseExperience(in.Companies, in.Roles, in.ExpStartDates, in.ExpEndDates, in.Descriptions)
	skills := profile.ParseSkills(in.Skills)
	certificates := profile.ParseCertificates(in.CertNames, in.CertIssuers, in.CertIssueDates, in.CertExpiryDates)
	projects := profile.ParseProjects(in.ProjectNames, in.GithubLinks)

	switch {
	case len(education) == 0:
		return nil, fmt.Errorf("%w: at least one education entry is required", ErrInvalidInput)
	case len(experience) == 0:
		return nil, fmt.Errorf("%w: at least one experience entry is required", ErrInvalidInput)
	case len(skills) == 0:
		return nil, fmt.Errorf("%w: skills are required", ErrInvalidInput)
	case strings.TrimSpace(in.JobDescription) == "":
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	experience, err = s.Augment.AugmentAll(ctx, experience, in.Skills, in.JobDescription)
	if err != nil {
		return nil, err
	}

	gen := Generation{
		Resume: Resume{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
			LinkedURL: strings.TrimSpace(in.LinkedURL),
		},
		Education:    stampEducation(education, user),
		Experience:   stampExperience(experience, user),
		Skills:       stampSkills(skills, user),
		Certificates: stampCertificates(certificates, user),
		Projects:     stampProjects(projects, user),
	}
	gen.Resume.Education = FlattenEducation(gen.Education)
	gen.Resume.Experience = FlattenExperience(gen.Experience)
	gen.Resume.Skills = in.Skills

	if err := s.Repo.CreateGeneration(ctx, gen); err != nil {
		return nil, fmt.Errorf("persist generation: %w", err)
	}

	downloadURL, err := s.exportArtifact(ctx, &gen)
	if err != nil {
		return nil, err
	}

	view := BuildView(gen.Resume, gen, downloadURL)
	html, err := render.HTML(view)
	if err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}

	telemetry.Info("resume.generated", map[string]any{
		"resume_id":   gen.Resume.ID,
		"user_id":     user.ID,
		"experiences": len(gen.Experience),
		"exported":    downloadURL != "",
	})
	return &Generated{
		Resume:      gen.Resume,
		Detail:      BuildDetail(gen.Resume, gen.Education, gen.Experience, gen.Skills, gen.Certificates, gen.Projects),
		View:        view,
		HTML:        html,
		DownloadURL: downloadURL,
	}, nil
}

// exportArtifact renders and uploads the PDF when a converter is wired.
// Without one the resume simply has no download link.
func (s *Service) exportArtifact(ctx context.Context, gen *Generation) (string, error) {
	html, err := render.HTML(BuildView(gen.Resume, *gen, ""))
	if err != nil {
		return "", fmt.Errorf("render resume: %w", err)
	}

	pdf, err := s.Exporter.Export(ctx, html)
	if err != nil {
		if errors.Is(err, export.ErrNoExporter) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	key := fmt.Sprintf("resumes/%s/%s.pdf", util.HashUserKey(gen.Resume.UserID), gen.Resume.ID)
	if _, err := s.Store.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(pdf)); err != nil {
		return "", fmt.Errorf("store pdf: %w", err)
	}
	if err := s.Repo.AttachArtifact(ctx, gen.Resume.ID, key); err != nil {
		return "", fmt.Errorf("attach artifact: %w", err)
	}
	gen.Resume.ArtifactKey = key

	return s.Store.URL(ctx, key)
}

// EditInput carries the editable header fields of a stored resume. The
// entity groups are edited through their own endpoints.
type EditInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	LinkedURL string
	Skills    string
}

// Edit returns the user's resume in nested form for the edit screen. A
// resume owned by someone else reads as absent.
func (s *Service) Edit(ctx context.Context, userID, resumeID string) (Detail, error) {
	res, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Detail{}, err
	}
	if res.UserID != userID {
		return Detail{}, ErrNotFound
	}
	return s.detail(ctx, res)
}

// Update rewrites the resume's header fields and returns the nested
// form re-read after the write.
func (s *Service) Update(ctx context.Context, userID, resumeID string, in EditInput) (Detail, error) {
	res, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Detail{}, err
	}
	if res.UserID != userID {
		return Detail{}, ErrNotFound
	}

	res.FirstName = strings.TrimSpace(in.FirstName)
	res.LastName = strings.TrimSpace(in.LastName)
	res.Email = strings.TrimSpace(in.Email)
	res.Phone = strings.TrimSpace(in.Phone)
	res.LinkedURL = strings.TrimSpace(in.LinkedURL)
	res.Skills = strings.TrimSpace(in.Skills)
	if err := s.Repo.Update(ctx, res); err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, res)
}

func (s *Service) detail(ctx context.Context, res Resume) (Detail, error) {
	edu, err := s.Profile.EducationByUser(ctx, res.UserID)
	if err != nil {
		return Detail{}, err
	}
	exp, err := s.Profile.ExperienceByUser(ctx, res.UserID)
	if err != nil {
		return Detail{}, err
	}
	skills, err := s.Profile.SkillsByUser(ctx, res.UserID)
	if err != nil {
		return Detail{}, err
	}
	certs, err := s.Profile.CertificatesByUser(ctx, res.UserID)
	if err != nil {
		return Detail{}, err
	}
	projects, err := s.Profile.ProjectsByUser(ctx, res.UserID)
	if err != nil {
		return Detail{}, err
	}
	return BuildDetail(res, edu, exp, skills, certs, projects), nil
}

// ByEmail returns the latest stored resume for the email.
func (s *Service) ByEmail(ctx context.Context, email string) (Resume, error) {
	return s.Repo.LatestByEmail(ctx, email)
}

// DownloadURL resolves the artifact link of the user's latest resume.
func (s *Service) DownloadURL(ctx context.Context, userID string) (string, error) {
	res, err := s.Repo.LatestByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if res.ArtifactKey == "" {
		return "", ErrNoArtifact
	}
	return s.Store.URL(ctx, res.ArtifactKey)
}

// Latest returns the user's newest resume plus its artifact URL if one
// was exported.
func (s *Service) Latest(ctx context.Context, userID string) (Resume, string, error) {
	res, err := s.Repo.LatestByUser(ctx, userID)
	if err != nil {
		return Resume{}, "", err
	}
	url := ""
	if res.ArtifactKey != "" {
		url, err = s.Store.URL(ctx, res.ArtifactKey)
		if err != nil {
			return Resume{}, "", err
		}
	}
	return res, url, nil
}

// Delete removes the user's own resume.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}

// ListAll returns every stored resume, newest first.
func (s *Service) ListAll(ctx context.Context) ([]Resume, error) {
	return s.Repo.ListAll(ctx)
}

func stampEducation(entries []profile.Education, user users.User) []profile.Education {
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].UserID = user.ID
		entries[i].Email = user.Email
	}
	return entries
}

func stampExperience(entries []profile.Experience, user users.User) []profile.Experience {
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].UserID = user.ID
		entries[i].Email = user.Email
	}
	return entries
}

func stampSkills(entries []profile.Skill, user users.User) []profile.Skill {
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].UserID = user.ID
		entries[i].Email = user.Email
	}
	return entries
}

func stampCertificates(entries []profile.Certificate, user users.User) []profile.Certificate {
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].UserID = user.ID
		entries[i].Email = user.Email
	}
	return entries
}

func stampProjects(entries []profile.Project, user users.User) []profile.Project {
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].UserID = user.ID
	}
	return entries
}

package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/resumes"
)

var ErrEmptyComment = errors.New("comment text is required")

// Service manages reviewer feedback on resumes.
type Service struct {
	Repo    Repo
	Resumes resumes.Repo
	Now     func() time.Time
}

func NewService(repo Repo, resumeRepo resumes.Repo) *Service {
	return &Service{Repo: repo, Resumes: resumeRepo, Now: time.Now}
}

// Add attaches a new comment to the resume.
func (s *Service) Add(ctx context.Context, reviewerID, resumeID, text string) (Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, ErrEmptyComment
	}
	if _, err := s.Resumes.GetByID(ctx, resumeID); err != nil {
		return Comment{}, err
	}

	now := s.Now().UTC()
	comment := Comment{
		ID:         uuid.NewString(),
		ResumeID:   resumeID,
		ReviewerID: reviewerID,
		Comment:    text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, comment); err != nil {
		return Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// Update replaces the comment text.
func (s *Service) Update(ctx context.Context, id, text string) (Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, ErrEmptyComment
	}

	comment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Comment{}, err
	}
	comment.Comment = text
	comment.UpdatedAt = s.Now().UTC()
	if err := s.Repo.Update(ctx, comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *Service) ListByResume(ctx context.Context, resumeID string) ([]Comment, error) {
	return s.Repo.ListByResume(ctx, resumeID)
}

// CommentsForResume implements resumes.CommentSource for the dashboard.
func (s *Service) CommentsForResume(ctx context.Context, resumeID string) ([]resumes.CommentView, error) {
	list, err := s.Repo.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	views := make([]resumes.CommentView, 0, len(list))
	for _, c := range list {
		views = append(views, resumes.CommentView{ID: c.ID, Comment: c.Comment, CreatedAt: c.CreatedAt})
	}
	return views, nil
}

var _ resumes.CommentSource = (*Service)(nil)

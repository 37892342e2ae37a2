package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/sessions"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/users"
)

// Service handles login, logout and session resolution on top of the user
// and session repositories.
type Service struct {
	Users    *users.Service
	Sessions sessions.Repo
	Now      func() time.Time
}

func NewService(userSvc *users.Service, sessionRepo sessions.Repo) *Service {
	return &Service{Users: userSvc, Sessions: sessionRepo, Now: time.Now}
}

// Login authenticates the credentials and opens a session. The returned
// token goes into the session cookie.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Users.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	session := sessions.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		LoginTime: s.Now().UTC(),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return session.ID, nil
}

// Logout closes the user's open sessions. Logging out twice is harmless.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return s.Sessions.CloseForUser(ctx, userID, s.Now().UTC())
}

// ResolveSession implements middleware.IdentityResolver.
func (s *Service) ResolveSession(ctx context.Context, token string) (middleware.Identity, error) {
	session, err := s.Sessions.GetOpen(ctx, token)
	if err != nil {
		return middleware.Identity{}, err
	}
	user, err := s.Users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return middleware.Identity{}, sessions.ErrNotFound
		}
		return middleware.Identity{}, err
	}
	return middleware.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Reviewer: user.IsReviewer,
	}, nil
}

var _ middleware.IdentityResolver = (*Service)(nil)

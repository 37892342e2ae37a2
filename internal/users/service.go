package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/util"
)

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailNotAllowed    = errors.New("email domain not allowed")
)

type Service struct {
	Repo Repo
	// AllowedDomains holds email suffixes accepted at signup. Empty
	// disables the check.
	AllowedDomains []string
}

func NewService(repo Repo, allowedDomains []string) *Service {
	return &Service{Repo: repo, AllowedDomains: allowedDomains}
}

// SignupInput carries the signup form fields. Password is plaintext and
// must not outlive this call.
type SignupInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Phone     string
}

// Signup validates the input, hashes the password and persists the user.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	switch {
	case in.FirstName == "":
		return User{}, fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	case in.LastName == "":
		return User{}, fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	case in.Username == "":
		return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	case in.Email == "":
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case in.Password == "":
		return User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	if !s.emailAllowed(in.Email) {
		return User{}, ErrEmailNotAllowed
	}

	hash, err := util.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !util.VerifyPassword(user.PasswordHash, password) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	if strings.TrimSpace(email) == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.GetByEmail(ctx, email)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}

func (s *Service) emailAllowed(email string) bool {
	if len(s.AllowedDomains) == 0 {
		return true
	}
	lower := strings.ToLower(email)
	for _, domain := range s.AllowedDomains {
		if strings.HasSuffix(lower, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

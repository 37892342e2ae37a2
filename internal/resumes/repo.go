package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

type Repo interface {
	// CreateGeneration persists the entity groups and the aggregate row
	// together. A failure leaves nothing behind.
	CreateGeneration(ctx context.Context, gen Generation) error
	// AttachArtifact records the storage key of the exported PDF.
	AttachArtifact(ctx context.Context, resumeID, artifactKey string) error
	GetByID(ctx context.Context, id string) (Resume, error)
	LatestByUser(ctx context.Context, userID string) (Resume, error)
	LatestByEmail(ctx context.Context, email string) (Resume, error)
	// Update rewrites the aggregate row's header fields (name, contact,
	// skills string) in place, scoped to the owner.
	Update(ctx context.Context, res Resume) error
	// Delete removes the row only when it belongs to userID.
	Delete(ctx context.Context, userID, id string) error
	ListAll(ctx context.Context) ([]Resume, error)
	// LinkedInByEmail yields the LinkedIn URL from the latest resume. A
	// missing resume is reported as profile.ErrNotFound, satisfying the
	// profile.LinkedInSource contract.
	LinkedInByEmail(ctx context.Context, email string) (string, error)
}

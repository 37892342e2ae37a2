package comments

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("comment not found")

type Repo interface {
	Create(ctx context.Context, comment Comment) error
	GetByID(ctx context.Context, id string) (Comment, error)
	Update(ctx context.Context, comment Comment) error
	Delete(ctx context.Context, id string) error
	ListByResume(ctx context.Context, resumeID string) ([]Comment, error)
}

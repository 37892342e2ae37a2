package comments

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, comment Comment) error {
	const query = `
INSERT INTO comments (id, resume_id, reviewer_id, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())`
	_, err := r.DB.ExecContext(ctx, query, comment.ID, comment.ResumeID, comment.ReviewerID, comment.Comment)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Comment, error) {
	const query = `
SELECT id, resume_id, reviewer_id, comment, created_at, updated_at
FROM comments
WHERE id = $1
LIMIT 1`
	var c Comment
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ResumeID, &c.ReviewerID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

func (r *PGRepo) Update(ctx context.Context, comment Comment) error {
	const query = `
UPDATE comments
SET comment = $2, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, comment.ID, comment.Comment)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]Comment, error) {
	const query = `
SELECT id, resume_id, reviewer_id, comment, created_at, updated_at
FROM comments
WHERE resume_id = $1
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.ResumeID, &c.ReviewerID, &c.Comment, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)

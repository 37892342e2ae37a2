package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resume-builder/internal/profile"
)

type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, first_name, last_name, email, phone, linked_url, education, experience, skills, artifact_key, created_at`

func (r *PGRepo) CreateGeneration(ctx context.Context, gen Generation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range gen.Education {
		_, err := tx.ExecContext(ctx, `
INSERT INTO education (id, user_id, email, degree, institution, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
			e.ID, e.UserID, e.Email, e.Degree, e.Institution, e.StartDate, e.EndDate)
		if err != nil {
			return fmt.Errorf("insert education: %w", err)
		}
	}

	for _, e := range gen.Experience {
		_, err := tx.ExecContext(ctx, `
INSERT INTO experience (id, user_id, email, company_name, role, start_date, end_date, description, full_description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`,
			e.ID, e.UserID, e.Email, e.Company, e.Role, e.StartDate, e.EndDate, e.Description, e.FullDescription)
		if err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	for _, s := range gen.Skills {
		_, err := tx.ExecContext(ctx, `
INSERT INTO skills (id, user_id, email, skill_name, proficiency_level)
VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.UserID, s.Email, s.Name, s.Proficiency)
		if err != nil {
			return fmt.Errorf("insert skill: %w", err)
		}
	}

	for _, cert := range gen.Certificates {
		_, err := tx.ExecContext(ctx, `
INSERT INTO certificates (id, user_id, email, certificate_name, issuing_organization, issue_date, expiration_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			cert.ID, cert.UserID, cert.Email, cert.Name, cert.Issuer, cert.IssueDate, cert.ExpirationDate)
		if err != nil {
			return fmt.Errorf("insert certificate: %w", err)
		}
	}

	for _, p := range gen.Projects {
		_, err := tx.ExecContext(ctx, `
INSERT INTO projects (id, user_id, project_name, github_link)
VALUES ($1, $2, $3, $4)`,
			p.ID, p.UserID, p.Name, p.GithubLink)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}

	res := gen.Resume
	_, err = tx.ExecContext(ctx, `
INSERT INTO resumes (id, user_id, first_name, last_name, email, phone, linked_url, education, experience, skills, artifact_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '', now())`,
		res.ID, res.UserID, res.FirstName, res.LastName, res.Email, res.Phone,
		res.LinkedURL, res.Education, res.Experience, res.Skills)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepo) AttachArtifact(ctx context.Context, resumeID, artifactKey string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE resumes SET artifact_key = $2 WHERE id = $1`, resumeID, artifactKey)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) LatestByEmail(ctx context.Context, email string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE email = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	out, err := r.DB.ExecContext(ctx, `
UPDATE resumes SET first_name = $3, last_name = $4, email = $5, phone = $6, linked_url = $7, skills = $8
WHERE id = $1 AND user_id = $2`,
		res.ID, res.UserID, res.FirstName, res.LastName, res.Email, res.Phone, res.LinkedURL, res.Skills)
	if err != nil {
		return err
	}
	affected, err := out.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var res Resume
		if err := scanResume(rows, &res); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

func (r *PGRepo) LinkedInByEmail(ctx context.Context, email string) (string, error) {
	const query = `SELECT linked_url FROM resumes WHERE email = $1 ORDER BY created_at DESC LIMIT 1`
	var url string
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", profile.ErrNotFound
		}
		return "", err
	}
	return url, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner, res *Resume) error {
	return row.Scan(
		&res.ID, &res.UserID, &res.FirstName, &res.LastName, &res.Email,
		&res.Phone, &res.LinkedURL, &res.Education, &res.Experience,
		&res.Skills, &res.ArtifactKey, &res.CreatedAt,
	)
}

func (r *PGRepo) scanOne(row *sql.Row) (Resume, error) {
	var res Resume
	if err := scanResume(row, &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

var _ Repo = (*PGRepo)(nil)

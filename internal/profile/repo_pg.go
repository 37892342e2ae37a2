package profile

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) EducationByUser(ctx context.Context, userID string) ([]Education, error) {
	const query = `
SELECT id, user_id, email, degree, institution, start_date, end_date
FROM education
WHERE user_id = $1
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Education
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Email, &e.Degree, &e.Institution, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PGRepo) ExperienceByUser(ctx context.Context, userID string) ([]Experience, error) {
	const query = `
SELECT id, user_id, email, company_name, role, start_date, end_date, description, full_description
FROM experience
WHERE user_id = $1
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Experience
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Email, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description, &e.FullDescription); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PGRepo) SkillsByUser(ctx context.Context, userID string) ([]Skill, error) {
	const query = `
SELECT id, user_id, email, skill_name, proficiency_level
FROM skills
WHERE user_id = $1
ORDER BY skill_name`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Email, &s.Name, &s.Proficiency); err != nil {
			return nil, err
		}
		entries = append(entries, s)
	}
	return entries, rows.Err()
}

func (r *PGRepo) CertificatesByUser(ctx context.Context, userID string) ([]Certificate, error) {
	const query = `
SELECT id, user_id, email, certificate_name, issuing_organization, issue_date, expiration_date
FROM certificates
WHERE user_id = $1
ORDER BY certificate_name`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Certificate
	for rows.Next() {
		var cert Certificate
		if err := rows.Scan(&cert.ID, &cert.UserID, &cert.Email, &cert.Name, &cert.Issuer, &cert.IssueDate, &cert.ExpirationDate); err != nil {
			return nil, err
		}
		entries = append(entries, cert)
	}
	return entries, rows.Err()
}

func (r *PGRepo) ProjectsByUser(ctx context.Context, userID string) ([]Project, error) {
	const query = `
SELECT id, user_id, project_name, github_link
FROM projects
WHERE user_id = $1
ORDER BY project_name`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.GithubLink); err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

func (r *PGRepo) AddExperience(ctx context.Context, exp Experience) error {
	const query = `
INSERT INTO experience (id, user_id, email, company_name, role, start_date, end_date, description, full_description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	_, err := r.DB.ExecContext(ctx, query,
		exp.ID, exp.UserID, exp.Email, exp.Company, exp.Role,
		exp.StartDate, exp.EndDate, exp.Description, exp.FullDescription,
	)
	return err
}

func (r *PGRepo) GetExperience(ctx context.Context, id string) (Experience, error) {
	const query = `
SELECT id, user_id, email, company_name, role, start_date, end_date, description, full_description
FROM experience
WHERE id = $1
LIMIT 1`
	var e Experience
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.Email, &e.Company, &e.Role,
		&e.StartDate, &e.EndDate, &e.Description, &e.FullDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Experience{}, ErrNotFound
		}
		return Experience{}, err
	}
	return e, nil
}

func (r *PGRepo) UpdateExperience(ctx context.Context, exp Experience) error {
	const query = `
UPDATE experience
SET company_name = $3, role = $4, start_date = $5, end_date = $6, description = $7, full_description = $8
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		exp.ID, exp.UserID, exp.Company, exp.Role,
		exp.StartDate, exp.EndDate, exp.Description, exp.FullDescription,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) DeleteExperience(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM experience WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
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

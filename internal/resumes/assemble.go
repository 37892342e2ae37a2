package resumes

import (
	"fmt"
	"strings"

	"resume-builder/internal/profile"
	"resume-builder/internal/render"
)

// Separator joins flattened entries and bullet points alike.
const Separator = profile.BulletSeparator

// FlattenEducation collapses education entries into the stored single
// string form.
func FlattenEducation(entries []profile.Education) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s from %s (%s to %s)", e.Degree, e.Institution, e.StartDate, e.EndDate))
	}
	return strings.Join(parts, Separator)
}

// FlattenExperience collapses experience entries, augmented bullets
// included, into the stored single string form.
func FlattenExperience(entries []profile.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s at %s (%s to %s): %s", e.Role, e.Company, e.StartDate, e.EndDate, e.Description))
	}
	return strings.Join(parts, Separator)
}

// SplitBullets reverses the bullet join for rendering. Every bullet comes
// back with exactly one trailing period; empty fragments are dropped.
func SplitBullets(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, Separator)
	bullets := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimSuffix(part, ".")
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bullets = append(bullets, part+".")
	}
	return bullets
}

// BuildDetail nests the entity groups back onto the aggregate row.
func BuildDetail(res Resume, edu []profile.Education, exp []profile.Experience,
	skills []profile.Skill, certs []profile.Certificate, projects []profile.Project) Detail {
	return Detail{
		ID:           res.ID,
		UserID:       res.UserID,
		FirstName:    res.FirstName,
		LastName:     res.LastName,
		Email:        res.Email,
		Phone:        res.Phone,
		LinkedURL:    res.LinkedURL,
		Education:    edu,
		Experience:   exp,
		Skills:       skills,
		Certificates: certs,
		Projects:     projects,
		CreatedAt:    res.CreatedAt,
	}
}

// BuildView nests the entity groups into the renderer's view model.
func BuildView(resume Resume, gen Generation, downloadURL string) render.Resume {
	view := render.Resume{
		FirstName:   resume.FirstName,
		LastName:    resume.LastName,
		Email:       resume.Email,
		Phone:       resume.Phone,
		LinkedIn:    resume.LinkedURL,
		DownloadURL: downloadURL,
	}
	for _, e := range gen.Education {
		view.Education = append(view.Education, render.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
		})
	}
	for _, e := range gen.Experience {
		view.Experience = append(view.Experience, render.Experience{
			Role:      e.Role,
			Company:   e.Company,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Bullets:   SplitBullets(e.Description),
		})
	}
	for _, s := range gen.Skills {
		view.Skills = append(view.Skills, render.Skill{Name: s.Name, Proficiency: s.Proficiency})
	}
	for _, cert := range gen.Certificates {
		view.Certificates = append(view.Certificates, render.Certificate{
			Name:      cert.Name,
			Issuer:    cert.Issuer,
			IssueDate: cert.IssueDate,
		})
	}
	for _, p := range gen.Projects {
		view.Projects = append(view.Projects, render.Project{Name: p.Name, GithubLink: p.GithubLink})
	}
	return view
}

package resumes

import (
	"time"

	"resume-builder/internal/profile"
)

// Resume is the stored aggregate row. Education and Experience hold the
// flattened single-string forms, Skills keeps the raw comma separated
// input so the view can split it back apart.
type Resume struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	LinkedURL   string    `json:"linkedUrl"`
	Education   string    `json:"education"`
	Experience  string    `json:"experience"`
	Skills      string    `json:"skills"`
	ArtifactKey string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Generation bundles the aggregate row with the entity groups persisted
// alongside it. The whole bundle commits or none of it does.
type Generation struct {
	Resume       Resume
	Education    []profile.Education
	Experience   []profile.Experience
	Skills       []profile.Skill
	Certificates []profile.Certificate
	Projects     []profile.Project
}

// Detail is the nested form of a stored resume: the aggregate row's
// header fields with the entity groups expanded instead of flattened.
// It backs the edit flow and the generation response.
type Detail struct {
	ID           string                `json:"id"`
	UserID       string                `json:"userId"`
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	LinkedURL    string                `json:"linkedUrl"`
	Education    []profile.Education   `json:"education"`
	Experience   []profile.Experience  `json:"experience"`
	Skills       []profile.Skill       `json:"skills"`
	Certificates []profile.Certificate `json:"certificates"`
	Projects     []profile.Project     `json:"projects"`
	CreatedAt    time.Time             `json:"createdAt"`
}

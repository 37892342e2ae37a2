package comments

import "time"

// Comment is reviewer feedback attached to a resume.
type Comment struct {
	ID         string    `json:"id"`
	ResumeID   string    `json:"resumeId"`
	ReviewerID string    `json:"reviewerId"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

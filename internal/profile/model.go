package profile

// Entity groups that make up a user's profile. Dates stay as free-form
// strings since the signup forms do not constrain their format.

// BulletSeparator joins bullet points inside Experience.Description. The
// same separator splits them back apart for rendering.
const BulletSeparator = "; "

type Education struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type Experience struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Company   string `json:"companyName"`
	Role      string `json:"role"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// Description holds the augmented bullet text used in the resume.
	// FullDescription keeps the raw text the user typed.
	Description     string `json:"description"`
	FullDescription string `json:"fullDescription"`
}

type Skill struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"skillName"`
	Proficiency string `json:"proficiencyLevel"`
}

type Certificate struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	Name           string `json:"certificateName"`
	Issuer         string `json:"issuingOrganization"`
	IssueDate      string `json:"issueDate"`
	ExpirationDate string `json:"expirationDate"`
}

type Project struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Name       string `json:"projectName"`
	GithubLink string `json:"githubLink"`
}

package render

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed resume.html.tmpl
var resumeTemplate string

var tmpl = template.Must(template.New("resume").Parse(resumeTemplate))

// Resume is the view model for the HTML renderer. All fields arrive
// pre-nested; the renderer does no parsing of its own.
type Resume struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	LinkedIn     string
	Education    []Education
	Experience   []Experience
	Skills       []Skill
	Certificates []Certificate
	Projects     []Project
	DownloadURL  string
}

type Education struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
}

type Experience struct {
	Role      string
	Company   string
	StartDate string
	EndDate   string
	Bullets   []string
}

type Skill struct {
	Name        string
	Proficiency string
}

type Certificate struct {
	Name      string
	Issuer    string
	IssueDate string
}

type Project struct {
	Name       string
	GithubLink string
}

// HTML renders the resume view to a standalone HTML document.
func HTML(resume Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, resume); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

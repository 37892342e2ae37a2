package render

import (
	"strings"
	"testing"
)

func TestHTMLIncludesAllSections(t *testing.T) {
	html, err := HTML(Resume{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@eagles.oc.edu",
		Phone:     "555-0100",
		LinkedIn:  "https://linkedin.com/in/ada",
		Education: []Education{
			{Degree: "BS Computer Science", Institution: "OC", StartDate: "2019", EndDate: "2023"},
		},
		Experience: []Experience{
			{Role: "Engineer", Company: "Acme", StartDate: "2021", EndDate: "2024", Bullets: []string{"Led X.", "Built Y."}},
		},
		Skills:       []Skill{{Name: "Go", Proficiency: "expert"}},
		Certificates: []Certificate{{Name: "AWS SAA", Issuer: "Amazon", IssueDate: "2023"}},
		Projects:     []Project{{Name: "resume-builder", GithubLink: "https://github.com/x/y"}},
		DownloadURL:  "https://example.com/r.pdf",
	})
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	doc := string(html)
	for _, want := range []string{
		"Ada Lovelace",
		"BS Computer Science",
		"Engineer",
		"<li>Led X.</li>",
		"<li>Built Y.</li>",
		"Go (expert)",
		"AWS SAA",
		"resume-builder",
		"https://example.com/r.pdf",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}

func TestHTMLOmitsEmptySections(t *testing.T) {
	html, err := HTML(Resume{FirstName: "Ada", LastName: "Lovelace", Email: "ada@eagles.oc.edu"})
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	doc := string(html)
	for _, section := range []string{"<h2>Education</h2>", "<h2>Experience</h2>", "<h2>Skills</h2>", "Download PDF"} {
		if strings.Contains(doc, section) {
			t.Fatalf("rendered HTML should omit %q", section)
		}
	}
}

func TestHTMLEscapesUserInput(t *testing.T) {
	html, err := HTML(Resume{FirstName: "<script>alert(1)</script>", LastName: "X", Email: "x@x"})
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(string(html), "<script>alert(1)</script>") {
		t.Fatal("user input not escaped")
	}
}

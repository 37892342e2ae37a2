package profile

import "strings"

// ParseSkills splits a comma separated "name:proficiency" list. Entries
// without a colon keep an empty proficiency, blank entries are dropped.
// Malformed input never fails, it just yields fewer entries.
func ParseSkills(raw string) []Skill {
	parts := strings.Split(raw, ",")
	skills := make([]Skill, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, level, _ := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		skills = append(skills, Skill{
			Name:        name,
			Proficiency: strings.TrimSpace(level),
		})
	}
	return skills
}

// ParseEducation zips the parallel form arrays into entries. Mismatched
// lengths truncate to the shortest array.
func ParseEducation(degrees, institutions, starts, ends []string) []Education {
	n := minLen(degrees, institutions)
	entries := make([]Education, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, Education{
			Degree:      strings.TrimSpace(degrees[i]),
			Institution: strings.TrimSpace(institutions[i]),
			StartDate:   at(starts, i),
			EndDate:     at(ends, i),
		})
	}
	return entries
}

// ParseExperience zips the parallel form arrays into entries. Mismatched
// lengths truncate to the shortest array.
func ParseExperience(companies, roles, starts, ends, descriptions []string) []Experience {
	n := minLen(companies, roles)
	entries := make([]Experience, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, Experience{
			Company:         strings.TrimSpace(companies[i]),
			Role:            strings.TrimSpace(roles[i]),
			StartDate:       at(starts, i),
			EndDate:         at(ends, i),
			FullDescription: at(descriptions, i),
		})
	}
	return entries
}

// ParseCertificates zips the parallel form arrays into entries.
func ParseCertificates(names, issuers, issueDates, expirationDates []string) []Certificate {
	entries := make([]Certificate, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, Certificate{
			Name:           name,
			Issuer:         at(issuers, i),
			IssueDate:      at(issueDates, i),
			ExpirationDate: at(expirationDates, i),
		})
	}
	return entries
}

// ParseProjects zips the parallel form arrays into entries.
func ParseProjects(names, links []string) []Project {
	entries := make([]Project, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, Project{
			Name:       name,
			GithubLink: at(links, i),
		})
	}
	return entries
}

func minLen(lists ...[]string) int {
	if len(lists) == 0 {
		return 0
	}
	n := len(lists[0])
	for _, list := range lists[1:] {
		if len(list) < n {
			n = len(list)
		}
	}
	return n
}

func at(list []string, i int) string {
	if i < len(list) {
		return strings.TrimSpace(list[i])
	}
	return ""
}

package profile

import (
	"reflect"
	"testing"
)

func TestParseSkills(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []Skill
	}{
		{
			name: "name and proficiency pairs",
			raw:  "a:1, b:2",
			want: []Skill{{Name: "a", Proficiency: "1"}, {Name: "b", Proficiency: "2"}},
		},
		{
			name: "missing colon keeps empty proficiency",
			raw:  "a",
			want: []Skill{{Name: "a", Proficiency: ""}},
		},
		{
			name: "whitespace trimmed",
			raw:  "  Go : expert ,  SQL:intermediate ",
			want: []Skill{{Name: "Go", Proficiency: "expert"}, {Name: "SQL", Proficiency: "intermediate"}},
		},
		{
			name: "blank entries dropped",
			raw:  "a:1,, ,b",
			want: []Skill{{Name: "a", Proficiency: "1"}, {Name: "b", Proficiency: ""}},
		},
		{
			name: "empty input",
			raw:  "",
			want: []Skill{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSkills(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseEducationTruncatesToShortest(t *testing.T) {
	got := ParseEducation(
		[]string{"BS", "MS"},
		[]string{"OC"},
		[]string{"2019", "2023"},
		[]string{"2023"},
	)
	want := []Education{{Degree: "BS", Institution: "OC", StartDate: "2019", EndDate: "2023"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseExperienceKeepsRawDescription(t *testing.T) {
	got := ParseExperience(
		[]string{"Acme"},
		[]string{"Engineer"},
		[]string{"2021"},
		[]string{"2024"},
		[]string{"built internal tools"},
	)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].FullDescription != "built internal tools" {
		t.Fatalf("raw description not kept: %+v", got[0])
	}
	if got[0].Description != "" {
		t.Fatalf("augmented description should start empty: %+v", got[0])
	}
}

func TestParseExperienceMissingDates(t *testing.T) {
	got := ParseExperience(
		[]string{"Acme", "Globex"},
		[]string{"Engineer", "Analyst"},
		[]string{"2021"},
		nil,
		nil,
	)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[1].StartDate != "" || got[1].EndDate != "" {
		t.Fatalf("missing dates should be empty: %+v", got[1])
	}
}

func TestParseProjects(t *testing.T) {
	got := ParseProjects([]string{"resume-builder", ""}, []string{"https://github.com/x/y"})
	want := []Project{{Name: "resume-builder", GithubLink: "https://github.com/x/y"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// Package catalog holds the read-only skill vocabulary and job postings the
// matcher and scorer are built from.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is returned when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Skill maps a skill tag to the surface forms that signal it in resume text.
type Skill struct {
	Tag      string   `json:"tag" mapstructure:"tag"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// JobPosting describes an opening and its skill requirements.
type JobPosting struct {
	ID             int      `json:"id" mapstructure:"id"`
	Title          string   `json:"title" mapstructure:"title"`
	Company        string   `json:"company" mapstructure:"company"`
	RequiredSkills []string `json:"required_skills" mapstructure:"required_skills"`
	NiceToHave     []string `json:"nice_to_have" mapstructure:"nice_to_have"`
	Salary         string   `json:"salary" mapstructure:"salary"`
	Experience     string   `json:"experience" mapstructure:"experience"`
}

// Catalog is the keyword table plus the job list.
type Catalog struct {
	Skills []Skill      `mapstructure:"skills"`
	Jobs   []JobPosting `mapstructure:"jobs"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Skills: []Skill{
			{Tag: "python", Keywords: []string{"python", "pandas", "numpy"}},
			{Tag: "javascript", Keywords: []string{"javascript", "js", "es6"}},
			{Tag: "react", Keywords: []string{"react", "reactjs"}},
			{Tag: "sql", Keywords: []string{"sql", "mysql", "postgresql"}},
			{Tag: "aws", Keywords: []string{"aws", "amazon web services"}},
		},
		Jobs: []JobPosting{
			{
				ID:             1,
				Title:          "Full Stack Developer",
				Company:        "TechCorp",
				RequiredSkills: []string{"javascript", "react", "node", "python"},
				NiceToHave:     []string{"aws", "docker"},
				Salary:         "$90k-$120k",
				Experience:     "2+ years",
			},
			{
				ID:             2,
				Title:          "Data Engineer",
				Company:        "DataSystems",
				RequiredSkills: []string{"python", "sql", "spark", "etl"},
				NiceToHave:     []string{"airflow", "aws"},
				Salary:         "$100k-$140k",
				Experience:     "3+ years",
			},
		},
	}
}

// Tags returns the skill tags in table order.
func (c Catalog) Tags() []string {
	out := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, s.Tag)
	}
	return out
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Skills: make([]Skill, len(c.Skills)),
		Jobs:   make([]JobPosting, len(c.Jobs)),
	}
	for i, s := range c.Skills {
		out.Skills[i] = Skill{Tag: s.Tag, Keywords: append([]string(nil), s.Keywords...)}
	}
	for i, j := range c.Jobs {
		j.RequiredSkills = append([]string(nil), j.RequiredSkills...)
		j.NiceToHave = append([]string(nil), j.NiceToHave...)
		out.Jobs[i] = j
	}
	return out
}

// Normalize lowercases tags, keywords and job skill lists and drops blanks.
// Keywords keep surrounding spaces, so " go " only matches a standalone word.
func (c Catalog) Normalize() Catalog {
	out := c.Clone()
	for i := range out.Skills {
		out.Skills[i].Tag = normalize(out.Skills[i].Tag)
		out.Skills[i].Keywords = normalizeKeywords(out.Skills[i].Keywords)
	}
	for i := range out.Jobs {
		out.Jobs[i].Title = strings.TrimSpace(out.Jobs[i].Title)
		out.Jobs[i].Company = strings.TrimSpace(out.Jobs[i].Company)
		out.Jobs[i].RequiredSkills = normalizeList(out.Jobs[i].RequiredSkills)
		out.Jobs[i].NiceToHave = normalizeList(out.Jobs[i].NiceToHave)
	}
	return out
}

// Validate checks the catalog invariants.
func (c Catalog) Validate() error {
	if len(c.Skills) == 0 {
		return fmt.Errorf("%w: no skills defined", ErrInvalidCatalog)
	}
	tags := make(map[string]struct{}, len(c.Skills))
	for i, s := range c.Skills {
		tag := normalize(s.Tag)
		if tag == "" {
			return fmt.Errorf("%w: skill %d has an empty tag", ErrInvalidCatalog, i)
		}
		if _, dup := tags[tag]; dup {
			return fmt.Errorf("%w: duplicate skill tag %q", ErrInvalidCatalog, tag)
		}
		tags[tag] = struct{}{}
		if len(normalizeKeywords(s.Keywords)) == 0 {
			return fmt.Errorf("%w: skill %q has no keywords", ErrInvalidCatalog, tag)
		}
	}
	ids := make(map[int]struct{}, len(c.Jobs))
	for _, j := range c.Jobs {
		if _, dup := ids[j.ID]; dup {
			return fmt.Errorf("%w: duplicate job id %d", ErrInvalidCatalog, j.ID)
		}
		ids[j.ID] = struct{}{}
		if strings.TrimSpace(j.Title) == "" {
			return fmt.Errorf("%w: job %d has an empty title", ErrInvalidCatalog, j.ID)
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeList keeps order, drops blanks and repeats.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		n := normalize(item)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// normalizeKeywords lowercases without trimming and drops all-blank entries.
func normalizeKeywords(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		kw := strings.ToLower(item)
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

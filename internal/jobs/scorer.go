package jobs

import (
	"sort"
	"strings"

	"resume-matcher/internal/catalog"
)

// Scorer ranks the catalog's postings against candidate skills.
type Scorer struct {
	jobs     []catalog.JobPosting
	minScore int
}

// NewScorer copies the job list out of cat.
func NewScorer(cat catalog.Catalog) *Scorer {
	return &Scorer{jobs: cat.Normalize().Jobs, minScore: MinMatchScore}
}

// Recommend scores every posting, keeps those at or above MinMatchScore and
// orders them by score descending. Equal scores keep catalog order. Postings
// without required skills are skipped.
func (s *Scorer) Recommend(skills []string) []Recommendation {
	candidate := NormalizeSkills(skills)
	have := make(map[string]struct{}, len(candidate))
	for _, sk := range candidate {
		have[sk] = struct{}{}
	}

	out := make([]Recommendation, 0, len(s.jobs))
	for _, job := range s.jobs {
		if len(job.RequiredSkills) == 0 {
			continue
		}
		rec, ok := s.score(job, candidate, have)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func (s *Scorer) score(job catalog.JobPosting, candidate []string, have map[string]struct{}) (Recommendation, bool) {
	required := toSet(job.RequiredSkills)
	niceToHave := toSet(job.NiceToHave)

	matched := make([]string, 0, len(job.RequiredSkills))
	matchedNice := make([]string, 0, len(job.NiceToHave))
	for _, sk := range candidate {
		if _, ok := required[sk]; ok {
			matched = append(matched, sk)
		}
		if _, ok := niceToHave[sk]; ok {
			matchedNice = append(matchedNice, sk)
		}
	}

	score := len(matched) * 100 / len(job.RequiredSkills)
	if score < s.minScore {
		return Recommendation{}, false
	}

	missing := make([]string, 0, len(job.RequiredSkills)-len(matched))
	for _, sk := range job.RequiredSkills {
		if _, ok := have[sk]; !ok {
			missing = append(missing, sk)
		}
	}

	job.RequiredSkills = append([]string(nil), job.RequiredSkills...)
	job.NiceToHave = append([]string(nil), job.NiceToHave...)
	return Recommendation{
		JobPosting:        job,
		MatchScore:        score,
		MissingSkills:     missing,
		MatchedSkills:     matched,
		MatchedNiceToHave: matchedNice,
	}, true
}

// NormalizeSkills trims and lowercases skills, dropping blanks and repeats
// while keeping first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, sk := range skills {
		n := strings.ToLower(strings.TrimSpace(sk))
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

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

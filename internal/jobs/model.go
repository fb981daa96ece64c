package jobs

import "resume-matcher/internal/catalog"

// MinMatchScore is the lowest score a posting needs to be recommended.
const MinMatchScore = 50

// Recommendation is a posting scored against a candidate's skills.
type Recommendation struct {
	catalog.JobPosting
	MatchScore        int      `json:"match_score"`
	MissingSkills     []string `json:"missing_skills"`
	MatchedSkills     []string `json:"matched_skills"`
	MatchedNiceToHave []string `json:"matched_nice_to_have"`
}

package health

import "resume-matcher/internal/catalog"

// Service encapsulates health-related checks.
type Service struct {
	skills int
	jobs   int
}

// NewService constructs a health service reporting the loaded catalog size.
func NewService(cat catalog.Catalog) *Service {
	return &Service{skills: len(cat.Skills), jobs: len(cat.Jobs)}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "skills": s.skills, "jobs": s.jobs}
}

package resumes

import (
	"context"
	"encoding/json"
	"time"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/shared/util"
	"resume-matcher/internal/skills"
)

// SkillCache stores parse results keyed by document digest.
type SkillCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// ExtractFunc turns a PDF into lowercase text.
type ExtractFunc func(ctx context.Context, data []byte) (string, error)

// Service extracts text from resumes and detects skills in it.
type Service struct {
	matcher     *skills.Matcher
	extract     ExtractFunc
	cache       SkillCache
	cacheTTL    time.Duration
	fingerprint string
}

// Option customizes a Service.
type Option func(*Service)

// WithCache enables result caching.
func WithCache(cache SkillCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithExtractor replaces the PDF extractor.
func WithExtractor(fn ExtractFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.extract = fn
		}
	}
}

// NewService constructs a Service around matcher.
func NewService(matcher *skills.Matcher, opts ...Option) *Service {
	s := &Service{
		matcher: matcher,
		extract: extract.Text,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.fingerprint = vocabularyFingerprint(matcher)
	return s
}

// Matcher exposes the skill matcher backing the service.
func (s *Service) Matcher() *skills.Matcher {
	return s.matcher
}

// Parse returns the skill tags found in a PDF resume.
func (s *Service) Parse(ctx context.Context, data []byte) ([]string, error) {
	key := s.cacheKey(data)
	if s.cache != nil {
		var cached []string
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			metrics.IncResumeParseCacheHit()
			return cached, nil
		}
	}

	metrics.IncResumeParse()
	start := time.Now()
	text, err := s.extract(ctx, data)
	metrics.ObserveExtractDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncResumeParseFailed()
		return nil, err
	}

	found := s.matcher.Match(text)
	telemetry.Debug("resume.skills.matched", map[string]any{
		"text_chars": len(text),
		"skills":     found,
		"mode":       string(s.matcher.Mode()),
	})

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, found, s.cacheTTL); err != nil {
			telemetry.Warn("resume.cache.store_failed", map[string]any{"err": err})
		}
	}
	return found, nil
}

func (s *Service) cacheKey(data []byte) string {
	return "parse:" + s.fingerprint + ":" + util.HashContent(data)
}

// vocabularyFingerprint changes whenever the keyword table or mode does, so
// cached results never outlive a catalog change.
func vocabularyFingerprint(m *skills.Matcher) string {
	raw, err := json.Marshal(struct {
		Mode  skills.Mode `json:"mode"`
		Vocab any         `json:"vocab"`
	}{Mode: m.Mode(), Vocab: m.Vocabulary()})
	if err != nil {
		return "unversioned"
	}
	return util.HashContent(raw)[:16]
}

package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"resume-matcher/internal/catalog"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/extract/extracttest"
	"resume-matcher/internal/skills"
)

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.items[key] = b
	m.sets++
	return nil
}

func TestParseRealPDF(t *testing.T) {
	svc := NewService(skills.NewMatcher(catalog.Default(), skills.ModeSubstring))

	got, err := svc.Parse(context.Background(), extracttest.PDF("Data work in Pandas and MySQL", "Deployed on AWS"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"python", "sql", "aws"}) {
		t.Fatalf("unexpected skills: %v", got)
	}
}

func TestParsePropagatesExtractionError(t *testing.T) {
	svc := NewService(skills.NewMatcher(catalog.Default(), skills.ModeSubstring))

	_, err := svc.Parse(context.Background(), []byte("plain text resume"))
	if !errors.Is(err, extract.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestParseUsesCache(t *testing.T) {
	calls := 0
	cache := newMemoryCache()
	svc := NewService(
		skills.NewMatcher(catalog.Default(), skills.ModeSubstring),
		WithCache(cache, time.Minute),
		WithExtractor(func(ctx context.Context, data []byte) (string, error) {
			calls++
			return "react and sql", nil
		}),
	)

	data := []byte("%PDF-1.4 fake")
	first, err := svc.Parse(context.Background(), data)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := svc.Parse(context.Background(), data)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected extractor called once, got %d", calls)
	}
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, []string{"react", "sql"}) {
		t.Fatalf("unexpected results %v / %v", first, second)
	}
}

func TestParseDoesNotCacheFailures(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(
		skills.NewMatcher(catalog.Default(), skills.ModeSubstring),
		WithCache(cache, time.Minute),
		WithExtractor(func(ctx context.Context, data []byte) (string, error) {
			return "", &extract.ExtractionError{Err: errors.New("bad xref")}
		}),
	)

	if _, err := svc.Parse(context.Background(), []byte("x")); err == nil {
		t.Fatal("expected error")
	}
	if cache.sets != 0 {
		t.Fatalf("expected no cache writes, got %d", cache.sets)
	}
}

func TestCacheKeyDependsOnVocabulary(t *testing.T) {
	data := []byte("same bytes")
	a := NewService(skills.NewMatcher(catalog.Default(), skills.ModeSubstring))
	b := NewService(skills.NewMatcher(catalog.Default(), skills.ModeWord))

	other := catalog.Default()
	other.Skills = other.Skills[:2]
	c := NewService(skills.NewMatcher(other, skills.ModeSubstring))

	if a.cacheKey(data) == b.cacheKey(data) {
		t.Fatal("mode must change the cache key")
	}
	if a.cacheKey(data) == c.cacheKey(data) {
		t.Fatal("vocabulary must change the cache key")
	}
	if a.cacheKey(data) != NewService(skills.NewMatcher(catalog.Default(), skills.ModeSubstring)).cacheKey(data) {
		t.Fatal("cache key must be stable")
	}
}

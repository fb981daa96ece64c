package health

import (
	"testing"

	"resume-matcher/internal/catalog"
)

func TestStatusReportsCatalogSize(t *testing.T) {
	status := NewService(catalog.Default()).Status()
	if status["ok"] != true {
		t.Fatalf("expected ok=true, got %v", status["ok"])
	}
	if status["skills"] != 5 || status["jobs"] != 2 {
		t.Fatalf("unexpected counts: %v", status)
	}
}

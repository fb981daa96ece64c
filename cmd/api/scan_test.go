package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/extract/extracttest"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/telemetry"
)

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Cleanup(telemetry.Use(zap.NewNop()))
	app, err := bootstrap.Build(config.Config{})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func TestScanPrintsSkillsAndJobs(t *testing.T) {
	app := newApp(t)

	var out bytes.Buffer
	pdf := extracttest.PDF("Data work with Python, pandas and PostgreSQL")
	if err := scan(context.Background(), app, "cv.pdf", pdf, &out); err != nil {
		t.Fatalf("scan: %v", err)
	}

	var got struct {
		File   string   `json:"file"`
		Skills []string `json:"skills"`
		Jobs   []struct {
			ID         int `json:"id"`
			MatchScore int `json:"match_score"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.File != "cv.pdf" {
		t.Fatalf("unexpected file: %s", got.File)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "python" || got.Skills[1] != "sql" {
		t.Fatalf("unexpected skills: %v", got.Skills)
	}
	if len(got.Jobs) != 1 || got.Jobs[0].ID != 2 || got.Jobs[0].MatchScore != 50 {
		t.Fatalf("unexpected jobs: %+v", got.Jobs)
	}
}

func TestScanRejectsNonPDF(t *testing.T) {
	app := newApp(t)

	err := scan(context.Background(), app, "notes.txt", []byte("plain text"), &bytes.Buffer{})
	if !errors.Is(err, extract.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if out.String() != "resume-matcher version: unknown\n" {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

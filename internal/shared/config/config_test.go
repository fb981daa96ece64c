package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"resume-matcher/internal/shared/telemetry"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" || cfg.Host != "0.0.0.0" {
		t.Fatalf("unexpected bind address %s:%s", cfg.Host, cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected max upload: %d", cfg.MaxUploadBytes)
	}
	if cfg.SkillMatchMode != "substring" {
		t.Fatalf("unexpected match mode: %s", cfg.SkillMatchMode)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
	}
	if !cfg.LogJSON {
		t.Fatalf("expected json logging by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("SKILL_MATCH_MODE", "Boundary")
	t.Setenv("ENV", "prod")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.SkillMatchMode != "word" {
		t.Fatalf("expected word mode, got %s", cfg.SkillMatchMode)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %s", cfg.Env)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
	}
	if cfg.AWSRegion != "eu-west-1" {
		t.Fatalf("unexpected aws region: %s", cfg.AWSRegion)
	}
}

func TestLoadFileAndDotenv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_ADDR=localhost:6379\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("REDIS_ADDR") })

	path := filepath.Join(dir, "matcher.yaml")
	body := "port: \"7000\"\ncors_allow_origins:\n  - http://one.test\n  - http://two.test\ncatalog_file: jobs.yaml\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != "http://one.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.CatalogFile != "jobs.yaml" {
		t.Fatalf("unexpected catalog file: %s", cfg.CatalogFile)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr from .env, got %q", cfg.RedisAddr)
	}
}

func TestLoadFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := LoadFile("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOrWarnLogsAndKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	core, observed := observer.New(zapcore.WarnLevel)
	t.Cleanup(telemetry.Use(zap.New(core)))

	cfg := loadOrWarn("does-not-exist.yaml")
	if cfg.Port != "5000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}

	entries := observed.FilterMessage("config.load_failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one config.load_failed entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["path"] != "does-not-exist.yaml" {
		t.Fatalf("unexpected fields: %v", entries[0].ContextMap())
	}
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

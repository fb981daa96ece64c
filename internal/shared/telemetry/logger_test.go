package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoWritesFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	restore := Use(zap.New(core))
	defer restore()

	Info("resume.parsed", map[string]any{"skills_found": 3, "request_id": "req-1"})
	Debug("hidden", nil)

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["request_id"] != "req-1" {
		t.Fatalf("unexpected request_id: %v", ctx["request_id"])
	}
	if ctx["skills_found"] != int64(3) {
		t.Fatalf("unexpected skills_found: %v (%T)", ctx["skills_found"], ctx["skills_found"])
	}
}

func TestWriterLoggerEmitsJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	restore := Use(NewWriterLogger(zapcore.AddSync(&buf), false))
	defer restore()

	Error("http.error", map[string]any{"err": errors.New("boom"), "status": 500})

	line := strings.TrimSpace(buf.String())
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	for _, key := range []string{"ts", "level", "msg", "err", "status"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["level"] != "error" || payload["msg"] != "http.error" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["err"] != "boom" {
		t.Fatalf("unexpected err field: %v", payload["err"])
	}
}

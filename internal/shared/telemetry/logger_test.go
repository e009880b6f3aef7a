package telemetry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	return buf.String()
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level string
		log   func(string, map[string]any)
	}{
		{"info", Info},
		{"warn", Warn},
		{"error", Error},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			out := captureStdout(t, func() {
				tt.log("db.fallback_memory", map[string]any{"reason": "connect"})
			})

			var payload map[string]any
			if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &payload); err != nil {
				t.Fatalf("decode log json: %v", err)
			}
			if payload["level"] != tt.level {
				t.Fatalf("unexpected level: %v", payload["level"])
			}
			if payload["msg"] != "db.fallback_memory" {
				t.Fatalf("unexpected msg: %v", payload["msg"])
			}
			if payload["reason"] != "connect" {
				t.Fatalf("unexpected reason field: %v", payload["reason"])
			}
			if _, ok := payload["ts"]; !ok {
				t.Fatal("missing ts field")
			}
		})
	}
}

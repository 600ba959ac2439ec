package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentStore, Output: &buf})

	logger.Info("spending added", FieldSpendingID, "abc")
	out := buf.String()
	if !strings.Contains(out, "component=store") || !strings.Contains(out, "spending_id=abc") {
		t.Fatalf("unexpected log line: %s", out)
	}

	buf.Reset()
	logger.WithComponent(ComponentWriter).Warn("persist failed")
	if !strings.Contains(buf.String(), "component=writer") {
		t.Fatalf("expected writer component: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	if got := FromContext(context.Background()); got.Component() != "unknown" {
		t.Fatalf("expected fallback logger, got component %q", got.Component())
	}

	logger := Discard().WithComponent(ComponentCLI)
	ctx := NewContext(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Fatal("expected the logger stored in the context")
	}
}

func TestLogFields(t *testing.T) {
	fields := NewFields().WithKey("spendings").WithOperation(OpPersist).WithError(nil)
	if _, ok := fields[FieldError]; ok {
		t.Fatal("nil error must not add a field")
	}
	if len(fields.ToSlice()) != 4 {
		t.Fatalf("expected 4 entries, got %v", fields.ToSlice())
	}
}

package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStructured(t *testing.T) {
	if msg, ok := structured([]any{"resolved", "rule", "weekday"}); !ok || msg != "resolved" {
		t.Errorf("expected structured message, got %q %v", msg, ok)
	}
	if _, ok := structured([]any{"only message"}); ok {
		t.Error("single argument must not be structured")
	}
	if _, ok := structured([]any{"msg", 1, "x"}); ok {
		t.Error("non-string key must not be structured")
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q", got)
	}
}

func TestInit(t *testing.T) {
	l := Init(ZapConfig{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole})
	l.Info(context.Background(), "hello", "key", "value")
	l.Infof(WithRequestID(context.Background(), "abc"), "formatted %d", 1)

	NewNop().Error(context.Background(), "discarded")
}

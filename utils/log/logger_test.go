package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCtx(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithChat(ctx, "groq", "Алиса")

	WithCtx(ctx).Info("dispatching")
	WithCtx(context.Background()).Info("bare")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Errorf("expected request_id req-1, got %v", fields["request_id"])
	}
	if fields["provider"] != "groq" || fields["personality"] != "Алиса" {
		t.Errorf("unexpected chat fields: %v", fields)
	}
	if _, ok := fields["conn_id"]; ok {
		t.Error("conn_id should be absent")
	}

	if len(entries[1].Context) != 0 {
		t.Errorf("expected no fields on bare context, got %v", entries[1].ContextMap())
	}
}

package log

import (
	"context"
	"os"

	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	Configure(os.Getenv("DEBUG") == "true")
}

// Configure rebuilds the package logger once the final config is known.
func Configure(debug bool) {
	if debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
}

type ctxKey string

const (
	requestIDKey   ctxKey = "request_id"
	connIDKey      ctxKey = "conn_id"
	providerKey    ctxKey = "provider"
	personalityKey ctxKey = "personality"
)

// WithRequestID tags ctx so WithCtx loggers carry the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func WithConnID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, connIDKey, id)
}

func WithChat(ctx context.Context, provider, personality string) context.Context {
	ctx = context.WithValue(ctx, providerKey, provider)
	return context.WithValue(ctx, personalityKey, personality)
}

func WithCtx(ctx context.Context) *zap.Logger {
	fields := []zap.Field{}

	for _, key := range []ctxKey{requestIDKey, connIDKey, providerKey, personalityKey} {
		if v := ctx.Value(key); v != nil {
			fields = append(fields, zap.Any(string(key), v))
		}
	}

	return logger.With(fields...)
}

func With(fields ...zap.Field) *zap.Logger {
	return logger.With(fields...)
}

// SetLogger replaces the package logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

func Sync() error {
	return logger.Sync()
}

package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	screenKey    ctxKey = "screen"
	requestIDKey ctxKey = "request_id"
)

// WithScreen tags the context with the name of the screen driving the work.
func WithScreen(ctx context.Context, screen string) context.Context {
	return context.WithValue(ctx, screenKey, screen)
}

func ScreenFrom(ctx context.Context) string {
	if v := ctx.Value(screenKey); v != nil {
		return v.(string)
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns a logger with screen and request_id automatically added.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if screen := ScreenFrom(ctx); screen != "" {
		l = l.With(zap.String("screen", screen))
	}
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	return l
}

// Package logger provides the structured, levelled logger used across the
// Bistro server, built on log/slog.
//
// Every request handler should log through the context-aware variant so the
// request ID is attached automatically:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("payment recorded", "email", p.Email, "price", p.Price)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/bistro/config"
)

var L *slog.Logger

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// mongoSink is the optional Mongo handler, kept so Close can flush it.
var mongoSink *MongoHandler

// Setup attaches the asynchronous MongoDB log sink when LOG_TO_MONGO is
// enabled. Call once at boot, after config.Load. Failure to reach Mongo
// downgrades to stdout-only logging, never an error for the caller.
func Setup() {
	if config.Get("LOG_TO_MONGO", "false") != "true" {
		return
	}

	mh, err := NewMongoHandler(config.MongoURI(), config.MongoDB(), "logs")
	if err != nil {
		L.Warn("logger: mongo sink unavailable", "error", err)
		return
	}

	mongoSink = mh
	L = slog.New(NewMultiHandler(baseHandler(), mh))
	slog.SetDefault(L)
}

// Close flushes and detaches the Mongo sink, if one was attached.
func Close() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger stored in ctx by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

// Package logging provides a minimal logging facade for ffibridge.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow host applications to route library diagnostics into whatever logging
// system they already run.
//
// # Logger Interface
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Implementations
//
// A slog-backed implementation:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// A zap-backed implementation:
//
//	z, _ := zap.NewDevelopment()
//	logger := logging.NewZap(z)
//
// Discard drops everything and is what the shared library uses until the host
// configures something else.
//
// # Redaction
//
// Text that crosses the boundary belongs to the caller and is never logged
// verbatim:
//
//	logger.Debug(ctx, "string processed", "len", n, logging.Redacted("input"))
//	// Logs: input="[redacted]"
package logging

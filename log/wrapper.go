package log

import (
	stdlog "log"
	"testing"

	"go.uber.org/zap/zapcore"
)

// Wrapper is a simple wrapper of a logging function.
//
// Different programs embed different logging libraries, and they are not
// always compatible with each other. Wrapper is a simple common ground
// that's easy to wrap whatever logging library a caller uses into.
type Wrapper func(msg string)

// NopWrapper is a Wrapper implementation that does nothing.
func NopWrapper(msg string) {}

// StdWrapper wraps stdlib log package into a Wrapper.
func StdWrapper(logger *stdlog.Logger) Wrapper {
	if logger == nil {
		return NopWrapper
	}
	return func(msg string) {
		logger.Print(msg)
	}
}

// TestWrapper is a Wrapper that can be used in test code.
//
// It fails the test when called.
func TestWrapper(tb testing.TB) Wrapper {
	return func(msg string) {
		tb.Errorf("logger called with msg: %q", msg)
	}
}

// ZapWrapper wraps the global zap logger into a Wrapper at the given
// level.
func ZapWrapper(logLevel zapcore.Level) Wrapper {
	return func(msg string) {
		switch logLevel {
		default:
			// for unknown values, fallback to info level.
			fallthrough
		case zapcore.InfoLevel:
			Info(msg)
		case zapcore.DebugLevel:
			Debug(msg)
		case zapcore.WarnLevel:
			Warn(msg)
		case zapcore.ErrorLevel:
			Error(msg)
		case ZapNopLevel:
			// do nothing
		}
	}
}

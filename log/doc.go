// Package log provides a thin wrapper around a global zap logger, plus a
// simple Wrapper type used by other odds.go packages for injectable
// logging.
//
// The library itself logs in exactly one place, the entropy bootstrap
// fallback, and does so through a Wrapper so callers can route or silence
// it. The global zap logger starts as a nop; call InitLogger to make it
// emit.
package log

// Package log provides structured logging for the HD wallet tooling. All
// output goes to stderr so key material printed on stdout stays
// machine-readable, and raw key bytes never reach the logger: callers log
// Fingerprint values instead.
package log

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the system.
var (
	Wallet zerolog.Logger
	Derive zerolog.Logger
	CLI    zerolog.Logger
)

func init() {
	Setup("info", false)
}

// Setup configures the global and component loggers. jsonOutput switches
// from the colored console writer to plain JSON.
func Setup(level string, jsonOutput bool) {
	Logger = New(os.Stderr, level, jsonOutput)
	Wallet = Logger.With().Str("component", "wallet").Logger()
	Derive = Logger.With().Str("component", "derive").Logger()
	CLI = Logger.With().Str("component", "cli").Logger()
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level string, jsonOutput bool) zerolog.Logger {
	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// parseLevel converts a level name, defaulting to info for anything zerolog
// does not recognize.
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Fingerprint returns a short stable identifier for key material that is
// safe to log: the leading four bytes of its SHA-256, hex encoded.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:4])
}

// Benchmark times an operation, reporting at debug level when the returned
// func runs.
func Benchmark(name string) func() {
	start := time.Now()
	return func() {
		Logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}

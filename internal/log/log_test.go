package log

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", true)
	l.Info().Str("component", "wallet").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"wallet"`) {
		t.Errorf("output missing component field: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", true)

	l.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Errorf("info should be suppressed at warn level, got %s", buf.String())
	}

	l.Warn().Msg("loud")
	if buf.Len() == 0 {
		t.Error("warn should pass at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	key := []byte{0xe8, 0xf3, 0x2e, 0x72, 0x3d, 0xec, 0xf4, 0x05}

	fp := Fingerprint(key)
	if len(fp) != 8 {
		t.Errorf("fingerprint length = %d, want 8 hex chars", len(fp))
	}
	if fp != Fingerprint(key) {
		t.Error("fingerprint is not deterministic")
	}
	if fp == Fingerprint([]byte{0x00}) {
		t.Error("different inputs should produce different fingerprints")
	}
	// The fingerprint must not echo the input bytes themselves.
	if strings.Contains(fp, hex.EncodeToString(key[:4])) {
		t.Errorf("fingerprint %s leaks input bytes", fp)
	}
}

func TestBenchmark(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	Logger = New(&buf, "debug", true)
	defer func() { Logger = old }()

	done := Benchmark("derive")
	done()

	out := buf.String()
	if !strings.Contains(out, `"operation":"derive"`) {
		t.Errorf("output missing operation field: %s", out)
	}
	if !strings.Contains(out, "benchmark") {
		t.Errorf("output missing benchmark message: %s", out)
	}
}

package bip44

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"master only", "m", Path{}},
		{"single normal", "m/0", Path{0}},
		{"single hardened", "m/0'", Path{HardenedOffset}},
		{"h hardener", "m/0h", Path{HardenedOffset}},
		{"ethereum account 5", "m/44'/60'/0'/0/5", Path{0x8000002C, 0x8000003C, 0x80000000, 0, 5}},
		{"max normal index", "m/2147483647", Path{0x7FFFFFFF}},
		{"max hardened index", "m/2147483647'", Path{0xFFFFFFFF}},
		{"mixed hardeners", "m/44h/60'/0h", Path{Harden(44), Harden(60), Harden(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %#x, want %#x", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no m prefix", "44'/60'"},
		{"wrong first char", "n/0"},
		{"m without slash", "m0"},
		{"trailing slash", "m/"},
		{"empty middle segment", "m/0//1"},
		{"bare hardener", "m/'"},
		{"index at offset", "m/2147483648"},
		{"hardened index at offset", "m/2147483648'"},
		{"huge index", "m/99999999999999999999"},
		{"non-digit", "m/0x10"},
		{"negative", "m/-1"},
		{"space in segment", "m/0 /1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); err == nil {
				t.Errorf("Parse(%q) should fail", tt.in)
			}
		})
	}
}

func TestParseInto(t *testing.T) {
	var dst [8]uint32

	n, ok := ParseInto("m/44'/60'/0'/0/5", dst[:])
	if !ok || n != 5 {
		t.Fatalf("ParseInto() = (%d, %v), want (5, true)", n, ok)
	}
	want := [5]uint32{0x8000002C, 0x8000003C, 0x80000000, 0, 5}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], w)
		}
	}

	// "m" parses to zero indices.
	n, ok = ParseInto("m", dst[:])
	if !ok || n != 0 {
		t.Errorf(`ParseInto("m") = (%d, %v), want (0, true)`, n, ok)
	}
}

func TestParseInto_Failures(t *testing.T) {
	var dst [2]uint32

	// Destination too short.
	if n, ok := ParseInto("m/1/2/3", dst[:]); ok || n != 0 {
		t.Errorf("short dst: ParseInto() = (%d, %v), want (0, false)", n, ok)
	}

	// Malformed input reports zero indices written.
	if n, ok := ParseInto("m/", dst[:]); ok || n != 0 {
		t.Errorf(`ParseInto("m/") = (%d, %v), want (0, false)`, n, ok)
	}
	if n, ok := ParseInto("m/2147483648", dst[:]); ok || n != 0 {
		t.Errorf("offset index: ParseInto() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		in   Path
		want string
	}{
		{"empty", Path{}, "m"},
		{"ethereum account 5", Path{0x8000002C, 0x8000003C, 0x80000000, 0, 5}, "m/44'/60'/0'/0/5"},
		{"zero hardened", Path{HardenedOffset}, "m/0'"},
		{"zero normal", Path{0}, "m/0"},
		{"max values", Path{0x7FFFFFFF, 0xFFFFFFFF}, "m/2147483647/2147483647'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Canonical text survives parse+format unchanged.
	canonical := []string{
		"m",
		"m/0",
		"m/0'",
		"m/44'/60'/0'/0/5",
		"m/44'/501'/7'/0'",
		"m/2147483647'",
	}
	for _, s := range canonical {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("format(parse(%q)) = %q", s, got)
		}
	}

	// The 'h' hardener normalizes to '.
	p, err := Parse("m/44h/60h")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := p.String(); got != "m/44'/60'" {
		t.Errorf("format = %q, want m/44'/60'", got)
	}
}

func TestHardeningRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 44, 2147483647} {
		p := Path{v + HardenedOffset}
		s := p.String()
		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if back[0] != v+HardenedOffset {
			t.Errorf("parse(format([%d'])) = %#x, want %#x", v, back[0], v+HardenedOffset)
		}
	}
}

func TestConventionalPaths(t *testing.T) {
	if got := Ethereum(5).String(); got != "m/44'/60'/0'/0/5" {
		t.Errorf("Ethereum(5) = %q", got)
	}
	if got := Cosmos(0).String(); got != "m/44'/118'/0'/0/0" {
		t.Errorf("Cosmos(0) = %q", got)
	}
	if got := Solana(3).String(); got != "m/44'/501'/3'/0'" {
		t.Errorf("Solana(3) = %q", got)
	}
}

func TestHarden(t *testing.T) {
	if got := Harden(44); got != 0x8000002C {
		t.Errorf("Harden(44) = %#x, want 0x8000002c", got)
	}
	if !IsHardened(HardenedOffset) {
		t.Error("IsHardened(HardenedOffset) should be true")
	}
	if IsHardened(HardenedOffset - 1) {
		t.Error("IsHardened(HardenedOffset-1) should be false")
	}
}

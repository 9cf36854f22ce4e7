// Package bip44 parses and formats BIP-44 style derivation paths.
//
// The textual form is `m`, optionally followed by `/`-separated segments of
// decimal indices, each with an optional trailing hardener (`'` or `h`):
//
//	m/44'/60'/0'/0/5
//
// The numeric form is a sequence of 32-bit indices where values at or above
// HardenedOffset are hardened.
package bip44

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset marks a derivation index as hardened (BIP-32).
const HardenedOffset uint32 = 0x80000000

// ErrInvalidPath is returned for malformed path text, indices past the
// hardening offset, or an empty path where one is required.
var ErrInvalidPath = errors.New("invalid derivation path")

// Path is the numeric form of a derivation path.
type Path []uint32

// Harden returns index with the hardening offset applied.
func Harden(index uint32) uint32 {
	return index + HardenedOffset
}

// IsHardened reports whether index carries the hardening offset.
func IsHardened(index uint32) bool {
	return index >= HardenedOffset
}

// Parse converts path text to its numeric form. The input must start with
// `m`; `"m"` alone yields an empty path. Each segment must be a decimal
// value below HardenedOffset, optionally followed by `'` or `h`.
func Parse(s string) (Path, error) {
	n, err := checkPrefix(s)
	if err != nil {
		return nil, err
	}
	p := make(Path, n)
	rest := s[min(len(s), 2):]
	for i := 0; i < n; i++ {
		var seg string
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			seg, rest = rest[:j], rest[j+1:]
		} else {
			seg, rest = rest, ""
		}
		v, ok := parseSegment(seg)
		if !ok {
			return nil, fmt.Errorf("%w: bad segment at index %d", ErrInvalidPath, i)
		}
		p[i] = v
	}
	return p, nil
}

// ParseInto is the non-raising form of Parse. It writes the parsed indices
// into dst and returns how many were written. On any failure, including dst
// being shorter than the path, it returns (0, false).
func ParseInto(s string, dst []uint32) (indicesWritten int, ok bool) {
	n, err := checkPrefix(s)
	if err != nil {
		return 0, false
	}
	if len(dst) < n {
		return 0, false
	}
	rest := s[min(len(s), 2):]
	for i := 0; i < n; i++ {
		var seg string
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			seg, rest = rest[:j], rest[j+1:]
		} else {
			seg, rest = rest, ""
		}
		v, ok := parseSegment(seg)
		if !ok {
			return 0, false
		}
		dst[i] = v
	}
	return n, true
}

// checkPrefix validates the `m` prefix and returns the segment count.
func checkPrefix(s string) (int, error) {
	if len(s) == 0 || s[0] != 'm' {
		return 0, fmt.Errorf("%w: must start with 'm'", ErrInvalidPath)
	}
	if len(s) > 1 && s[1] != '/' {
		return 0, fmt.Errorf("%w: 'm' must be followed by '/'", ErrInvalidPath)
	}
	return strings.Count(s, "/"), nil
}

// parseSegment decodes one segment: decimal digits plus an optional trailing
// hardener. The decoded value must be below HardenedOffset.
func parseSegment(seg string) (uint32, bool) {
	hardened := false
	if n := len(seg); n > 0 && (seg[n-1] == '\'' || seg[n-1] == 'h') {
		hardened = true
		seg = seg[:n-1]
	}
	if len(seg) == 0 {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v >= uint64(HardenedOffset) {
			return 0, false
		}
	}
	index := uint32(v)
	if hardened {
		index += HardenedOffset
	}
	return index, true
}

// String renders the canonical text form. Hardened indices use `'`.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('m')
	for _, index := range p {
		sb.WriteByte('/')
		if index >= HardenedOffset {
			sb.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			sb.WriteByte('\'')
		} else {
			sb.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return sb.String()
}

// Ethereum returns m/44'/60'/0'/0/account, the conventional EVM layout.
func Ethereum(account uint32) Path {
	return Path{Harden(44), Harden(60), Harden(0), 0, account}
}

// Cosmos returns m/44'/118'/0'/0/account, the Cosmos Hub layout.
func Cosmos(account uint32) Path {
	return Path{Harden(44), Harden(118), Harden(0), 0, account}
}

// Solana returns m/44'/501'/account'/0'. Solana hardens every level because
// its Ed25519 keys do not support non-hardened derivation.
func Solana(account uint32) Path {
	return Path{Harden(44), Harden(501), Harden(account), Harden(0)}
}

// Package slip10 implements SLIP-0010 hierarchical deterministic key
// derivation over secp256k1, NIST P-256, and Ed25519, together with the
// per-curve public-key encodings and signing primitives the derived keys
// feed into.
//
// Keys and chain codes are fixed 32-byte values owned by the caller. The
// package never sources randomness: master keys come from caller-supplied
// seeds and signatures use deterministic nonces. Secret bytes are never
// placed in error messages; failures reference derivation indices only.
package slip10

import (
	"errors"
	"fmt"
)

const (
	// KeySize is the length of a private key or scalar in bytes.
	KeySize = 32

	// ChainCodeSize is the length of a chain code in bytes.
	ChainCodeSize = 32

	// HardenedOffset marks a derivation index as hardened.
	HardenedOffset uint32 = 0x80000000
)

var (
	// ErrHardenedOnly is returned when a non-hardened index is requested
	// on a curve that forbids it (Ed25519).
	ErrHardenedOnly = errors.New("curve supports hardened derivation only")

	// ErrInvalidCurveInput is returned when the derivation retry loop
	// exhausts its bound without producing a scalar inside the curve
	// order. The per-step failure probability is about 2^-32 on NIST P-256
	// and below 2^-127 on secp256k1, so hitting this indicates corrupted
	// inputs rather than bad luck.
	ErrInvalidCurveInput = errors.New("derived scalar outside curve order")
)

// maxScalarRetries bounds the rejection-sampling loops in master and child
// derivation.
const maxScalarRetries = 1024

// Curve describes one supported curve: the HMAC key for master derivation,
// its scalar arithmetic, and its encoding/signing primitives. The three
// package-level instances are immutable and safe to share across
// goroutines.
type Curve struct {
	name         string
	hmacKey      []byte
	hardenedOnly bool

	// validScalar reports whether il is usable as a master key scalar.
	validScalar func(il []byte) bool

	// addScalar computes (il + parent) mod n into out, reporting false
	// when SLIP-0010 requires a retry (il >= n or a zero result).
	addScalar func(il, parent []byte, out *[KeySize]byte) bool

	pubCompressed   func(priv []byte) ([]byte, error)
	pubUncompressed func(priv []byte) ([]byte, error)
	sign            func(priv, data []byte) ([]byte, error)
	signRecoverable func(priv, digest []byte) ([]byte, error)
	verify          func(pub, data, sig []byte) bool
}

// Name returns the curve identifier ("secp256k1", "nist256p1", "ed25519").
func (c *Curve) Name() string {
	return c.name
}

func (c *Curve) String() string {
	return c.name
}

// PublicKey returns the public key for priv: 33-byte compressed form for
// Weierstrass curves, 32 bytes for Ed25519.
func (c *Curve) PublicKey(priv []byte) ([]byte, error) {
	return c.pubCompressed(priv)
}

// PublicKeyUncompressed returns the 65-byte uncompressed public key.
// Ed25519 has no uncompressed form and returns an error.
func (c *Curve) PublicKeyUncompressed(priv []byte) ([]byte, error) {
	if c.pubUncompressed == nil {
		return nil, fmt.Errorf("%s has no uncompressed public key form", c.name)
	}
	return c.pubUncompressed(priv)
}

// Sign produces a 64-byte signature. Weierstrass curves sign a 32-byte
// digest (r || s, big-endian); Ed25519 signs the message itself.
func (c *Curve) Sign(priv, data []byte) ([]byte, error) {
	return c.sign(priv, data)
}

// SignRecoverable produces a 65-byte r || s || v signature with v in {0, 1}.
// Only secp256k1 supports recovery.
func (c *Curve) SignRecoverable(priv, digest []byte) ([]byte, error) {
	if c.signRecoverable == nil {
		return nil, fmt.Errorf("recoverable signatures require secp256k1, not %s", c.name)
	}
	return c.signRecoverable(priv, digest)
}

// Verify checks a signature produced by Sign. Weierstrass curves accept the
// public key in compressed or uncompressed form. Verify never panics on
// malformed input; it returns false.
func (c *Curve) Verify(pub, data, sig []byte) bool {
	return c.verify(pub, data, sig)
}

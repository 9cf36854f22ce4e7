package slip10

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// compactSigMagic is the offset the compact signature format adds to the
// recovery code (27, plus 4 for a compressed public key).
const compactSigMagic = 27 + 4

// Secp256k1 is the curve used by Bitcoin and Ethereum. Master derivation
// keys off the literal string "Bitcoin seed".
var Secp256k1 = &Curve{
	name:            "secp256k1",
	hmacKey:         []byte("Bitcoin seed"),
	validScalar:     secpValidScalar,
	addScalar:       secpAddScalar,
	pubCompressed:   secpPubCompressed,
	pubUncompressed: secpPubUncompressed,
	sign:            secpSign,
	signRecoverable: secpSignRecoverable,
	verify:          secpVerify,
}

func secpValidScalar(il []byte) bool {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(il)
	ok := !overflow && !s.IsZero()
	s.Zero()
	return ok
}

func secpAddScalar(il, parent []byte, out *[KeySize]byte) bool {
	var s, p secp256k1.ModNScalar
	defer s.Zero()
	defer p.Zero()
	if s.SetByteSlice(il) {
		// I_L >= n: caller retries per SLIP-0010.
		return false
	}
	p.SetByteSlice(parent)
	s.Add(&p)
	if s.IsZero() {
		return false
	}
	s.PutBytesUnchecked(out[:])
	return true
}

func secpPrivKey(priv []byte) (*secp256k1.PrivateKey, error) {
	if len(priv) != KeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(priv))
	}
	return secp256k1.PrivKeyFromBytes(priv), nil
}

func secpPubCompressed(priv []byte) ([]byte, error) {
	key, err := secpPrivKey(priv)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return key.PubKey().SerializeCompressed(), nil
}

func secpPubUncompressed(priv []byte) ([]byte, error) {
	key, err := secpPrivKey(priv)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return key.PubKey().SerializeUncompressed(), nil
}

// secpSign produces the 64-byte r || s signature over a 32-byte digest.
// The nonce is RFC 6979 deterministic and s is low-s canonical.
func secpSign(priv, digest []byte) ([]byte, error) {
	compact, err := secpSignRecoverable(priv, digest)
	if err != nil {
		return nil, err
	}
	return compact[:64], nil
}

// secpSignRecoverable produces r || s || v with v in {0, 1}.
func secpSignRecoverable(priv, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	key, err := secpPrivKey(priv)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	compact := secpecdsa.SignCompact(key, digest, true)
	sig := make([]byte, 65)
	copy(sig, compact[1:])
	sig[64] = compact[0] - compactSigMagic
	Zero(compact)
	return sig, nil
}

func secpVerify(pub, digest, sig []byte) bool {
	if len(digest) != 32 || (len(sig) != 64 && len(sig) != 65) {
		return false
	}
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:64]) {
		return false
	}
	return secpecdsa.NewSignature(&r, &s).Verify(digest, key)
}

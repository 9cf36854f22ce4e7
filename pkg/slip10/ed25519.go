package slip10

import (
	"crypto/ed25519"
	"fmt"
)

// Ed25519 is the SLIP-0010 ed25519 curve. Master derivation keys off the
// literal string "ed25519 seed". Only hardened child derivation is allowed;
// any 32-byte value is a valid private key (it seeds the Ed25519 key
// expansion).
var Ed25519 = &Curve{
	name:          "ed25519",
	hmacKey:       []byte("ed25519 seed"),
	hardenedOnly:  true,
	validScalar:   func([]byte) bool { return true },
	addScalar:     ed25519AddScalar,
	pubCompressed: ed25519Pub,
	sign:          ed25519Sign,
	verify:        ed25519Verify,
}

// ed25519AddScalar is the SLIP-0010 ed25519 child rule: the child key is
// I_L verbatim, no curve arithmetic and no retry.
func ed25519AddScalar(il, _ []byte, out *[KeySize]byte) bool {
	copy(out[:], il)
	return true
}

func ed25519Pub(priv []byte) ([]byte, error) {
	if len(priv) != KeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(priv))
	}
	key := ed25519.NewKeyFromSeed(priv)
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, key[KeySize:])
	Zero(key)
	return pub, nil
}

func ed25519Sign(priv, data []byte) ([]byte, error) {
	if len(priv) != KeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(priv))
	}
	key := ed25519.NewKeyFromSeed(priv)
	sig := ed25519.Sign(key, data)
	Zero(key)
	return sig, nil
}

func ed25519Verify(pub, data, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), data, sig)
}

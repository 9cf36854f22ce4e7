package slip10

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// NistP256 is the SLIP-0010 nist256p1 curve. Master derivation keys off the
// literal string "Nist256p1 seed".
var NistP256 = &Curve{
	name:            "nist256p1",
	hmacKey:         []byte("Nist256p1 seed"),
	validScalar:     p256ValidScalar,
	addScalar:       p256AddScalar,
	pubCompressed:   p256PubCompressed,
	pubUncompressed: p256PubUncompressed,
	sign:            p256Sign,
	verify:          p256Verify,
}

var p256Order = elliptic.P256().Params().N

func p256ValidScalar(il []byte) bool {
	k := new(big.Int).SetBytes(il)
	ok := k.Sign() != 0 && k.Cmp(p256Order) < 0
	k.SetInt64(0)
	return ok
}

func p256AddScalar(il, parent []byte, out *[KeySize]byte) bool {
	k := new(big.Int).SetBytes(il)
	defer k.SetInt64(0)
	if k.Cmp(p256Order) >= 0 {
		return false
	}
	p := new(big.Int).SetBytes(parent)
	k.Add(k, p)
	k.Mod(k, p256Order)
	p.SetInt64(0)
	if k.Sign() == 0 {
		return false
	}
	k.FillBytes(out[:])
	return true
}

func p256Point(priv []byte) (x, y *big.Int, err error) {
	if len(priv) != KeySize {
		return nil, nil, fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(priv))
	}
	x, y = elliptic.P256().ScalarBaseMult(priv)
	return x, y, nil
}

func p256PubCompressed(priv []byte) ([]byte, error) {
	x, y, err := p256Point(priv)
	if err != nil {
		return nil, err
	}
	return elliptic.MarshalCompressed(elliptic.P256(), x, y), nil
}

func p256PubUncompressed(priv []byte) ([]byte, error) {
	x, y, err := p256Point(priv)
	if err != nil {
		return nil, err
	}
	return elliptic.Marshal(elliptic.P256(), x, y), nil
}

// p256Sign produces the 64-byte r || s ECDSA signature over a 32-byte
// digest. The nonce comes from RFC 6979 (HMAC-SHA256), so signing never
// touches a randomness source.
func p256Sign(priv, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	if len(priv) != KeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(priv))
	}
	d := new(big.Int).SetBytes(priv)
	defer d.SetInt64(0)
	if d.Sign() == 0 || d.Cmp(p256Order) >= 0 {
		return nil, fmt.Errorf("private key outside curve order")
	}

	z := new(big.Int).SetBytes(digest)
	z.Mod(z, p256Order)

	curve := elliptic.P256()
	nonce := newNonceReader(priv, digest)
	var kBytes [KeySize]byte
	defer Zero(kBytes[:])
	for i := 0; i < maxScalarRetries; i++ {
		k := nonce.next()
		k.FillBytes(kBytes[:])
		rx, _ := curve.ScalarBaseMult(kBytes[:])
		r := new(big.Int).Mod(rx, p256Order)
		if r.Sign() == 0 {
			k.SetInt64(0)
			continue
		}
		kInv := new(big.Int).ModInverse(k, p256Order)
		s := new(big.Int).Mul(r, d)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, p256Order)
		k.SetInt64(0)
		kInv.SetInt64(0)
		if s.Sign() == 0 {
			continue
		}
		sig := make([]byte, 64)
		r.FillBytes(sig[:32])
		s.FillBytes(sig[32:])
		return sig, nil
	}
	return nil, ErrInvalidCurveInput
}

func p256Verify(pub, digest, sig []byte) bool {
	if len(digest) != 32 || len(sig) != 64 {
		return false
	}
	curve := elliptic.P256()
	var x, y *big.Int
	switch len(pub) {
	case 33:
		x, y = elliptic.UnmarshalCompressed(curve, pub)
	case 65:
		x, y = elliptic.Unmarshal(curve, pub)
	default:
		return false
	}
	if x == nil {
		return false
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	return stdecdsa.Verify(&stdecdsa.PublicKey{Curve: curve, X: x, Y: y}, digest, r, s)
}

// nonceReader generates candidate ECDSA nonces per RFC 6979 §3.2 using
// HMAC-SHA256. P-256's order and SHA-256 are both 256 bits, so bits2int is
// the identity.
type nonceReader struct {
	k []byte
	v []byte
}

func newNonceReader(priv, digest []byte) *nonceReader {
	bh := new(big.Int).SetBytes(digest)
	bh.Mod(bh, p256Order)
	var suffix [2 * KeySize]byte
	copy(suffix[:KeySize], priv)
	bh.FillBytes(suffix[KeySize:])
	bh.SetInt64(0)
	defer Zero(suffix[:])

	n := &nonceReader{k: make([]byte, sha256.Size), v: make([]byte, sha256.Size)}
	for i := range n.v {
		n.v[i] = 0x01
	}
	n.update(0x00, suffix[:])
	n.update(0x01, suffix[:])
	return n
}

func (n *nonceReader) update(sep byte, suffix []byte) {
	mac := hmac.New(sha256.New, n.k)
	mac.Write(n.v)
	mac.Write([]byte{sep})
	mac.Write(suffix)
	n.k = mac.Sum(nil)
	n.v = hmacSHA256(n.k, n.v)
}

// next returns the next candidate nonce in [1, n).
func (n *nonceReader) next() *big.Int {
	for {
		n.v = hmacSHA256(n.k, n.v)
		k := new(big.Int).SetBytes(n.v)
		if k.Sign() > 0 && k.Cmp(p256Order) < 0 {
			return k
		}
		n.update(0x00, nil)
	}
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

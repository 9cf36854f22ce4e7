package slip10

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
)

// MasterFromSeed derives the master private key and chain code for this
// curve from an opaque seed (BIP-39 seeds are 64 bytes, but any non-empty
// seed is accepted).
func (c *Curve) MasterFromSeed(seed []byte) (key, chainCode []byte, err error) {
	if len(seed) == 0 {
		return nil, nil, fmt.Errorf("empty seed")
	}
	key = make([]byte, KeySize)
	chainCode = make([]byte, ChainCodeSize)
	if err := c.masterInto(seed, key, chainCode); err != nil {
		return nil, nil, err
	}
	return key, chainCode, nil
}

// masterInto runs the SLIP-0010 master derivation into caller buffers of
// exactly KeySize and ChainCodeSize bytes.
func (c *Curve) masterInto(seed, key, chainCode []byte) error {
	sum := hmacSHA512(c.hmacKey, seed)
	for i := 0; i < maxScalarRetries; i++ {
		if c.validScalar(sum[:KeySize]) {
			copy(key, sum[:KeySize])
			copy(chainCode, sum[KeySize:])
			Zero(sum)
			return nil
		}
		// I_L is zero or past the curve order: re-key on the full block.
		next := hmacSHA512(c.hmacKey, sum)
		Zero(sum)
		sum = next
	}
	Zero(sum)
	return ErrInvalidCurveInput
}

// DeriveChild replaces key and chainCode in place with the child at index.
// Both buffers must be exactly 32 bytes. Non-hardened indices are rejected
// for Ed25519.
func (c *Curve) DeriveChild(key, chainCode []byte, index uint32) error {
	if len(key) != KeySize || len(chainCode) != ChainCodeSize {
		return fmt.Errorf("key and chain code must be %d bytes", KeySize)
	}
	hardened := index >= HardenedOffset
	if c.hardenedOnly && !hardened {
		return fmt.Errorf("%w: index %d", ErrHardenedOnly, index)
	}

	// data is either 0x00 || key || ser32(i) (hardened) or
	// serP(pub) || ser32(i) (normal); both are 37 bytes.
	var data [1 + KeySize + 4]byte
	defer Zero(data[:])
	if hardened {
		data[0] = 0x00
		copy(data[1:1+KeySize], key)
	} else {
		pub, err := c.pubCompressed(key)
		if err != nil {
			return err
		}
		copy(data[:1+KeySize], pub)
		Zero(pub)
	}
	binary.BigEndian.PutUint32(data[1+KeySize:], index)

	var child [KeySize]byte
	for i := 0; i < maxScalarRetries; i++ {
		sum := hmacSHA512(chainCode, data[:])
		if c.addScalar(sum[:KeySize], key, &child) {
			copy(key, child[:])
			copy(chainCode, sum[KeySize:])
			Zero(child[:])
			Zero(sum)
			return nil
		}
		// SLIP-0010 retry: 0x01 || I_R || ser32(i).
		data[0] = 0x01
		copy(data[1:1+KeySize], sum[KeySize:])
		Zero(sum)
	}
	return fmt.Errorf("%w: index %d", ErrInvalidCurveInput, index)
}

// DeriveMaster derives the master key and chain code for curve c from seed.
func DeriveMaster(c *Curve, seed []byte) (key, chainCode []byte, err error) {
	return c.MasterFromSeed(seed)
}

// DerivePath derives the key at the end of path, walking child derivation
// from the master. The path must contain at least one index.
func DerivePath(c *Curve, seed []byte, path []uint32) (key, chainCode []byte, err error) {
	if len(path) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one index required", bip44.ErrInvalidPath)
	}
	key, chainCode, err = c.MasterFromSeed(seed)
	if err != nil {
		return nil, nil, err
	}
	for _, index := range path {
		if err := c.DeriveChild(key, chainCode, index); err != nil {
			Zero(key)
			Zero(chainCode)
			return nil, nil, err
		}
	}
	return key, chainCode, nil
}

// DerivePathString parses path with the BIP-44 codec and derives it.
func DerivePathString(c *Curve, seed []byte, path string) (key, chainCode []byte, err error) {
	p, err := bip44.Parse(path)
	if err != nil {
		return nil, nil, err
	}
	return DerivePath(c, seed, p)
}

// DeriveMasterInto is the non-raising form of DeriveMaster. The key and
// chainCode buffers must be exactly 32 bytes each; any mismatch or
// derivation failure reports false without touching the buffers further.
func DeriveMasterInto(c *Curve, seed, key, chainCode []byte) bool {
	if len(seed) == 0 || len(key) != KeySize || len(chainCode) != ChainCodeSize {
		return false
	}
	return c.masterInto(seed, key, chainCode) == nil
}

// DerivePathInto is the non-raising form of DerivePath. It returns false on
// any failure. A failed child step zeroes the buffers; an empty path or a
// failed master derivation leaves them untouched.
func DerivePathInto(c *Curve, seed []byte, path []uint32, key, chainCode []byte) bool {
	if len(path) == 0 {
		return false
	}
	if !DeriveMasterInto(c, seed, key, chainCode) {
		return false
	}
	for _, index := range path {
		if c.DeriveChild(key, chainCode, index) != nil {
			Zero(key)
			Zero(chainCode)
			return false
		}
	}
	return true
}

// Zero clears b. Callers use it to wipe key material they own.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

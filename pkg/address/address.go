// Package address encodes public keys into per-chain account addresses.
//
// These are the encodings the derivation engine's consumers need: Ethereum
// takes the Keccak-256 hash of the uncompressed secp256k1 key, Cosmos
// bech32-encodes RIPEMD160(SHA256(compressed key)), and Solana base58-encodes
// the Ed25519 public key directly.
package address

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// CosmosHRP is the bech32 human-readable part of Cosmos Hub accounts.
const CosmosHRP = "cosmos"

// Ethereum derives the EIP-55 checksummed address from a 65-byte
// uncompressed secp256k1 public key.
func Ethereum(uncompressedPub []byte) (string, error) {
	if len(uncompressedPub) != 65 || uncompressedPub[0] != 0x04 {
		return "", fmt.Errorf("address: uncompressed public key must be 65 bytes with 0x04 prefix")
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressedPub[1:])
	sum := h.Sum(nil)
	return checksumHex(sum[12:]), nil
}

// checksumHex applies the EIP-55 mixed-case checksum to a 20-byte address.
func checksumHex(addr []byte) string {
	buf := []byte(hex.EncodeToString(addr))
	h := sha3.NewLegacyKeccak256()
	h.Write(buf)
	sum := h.Sum(nil)
	for i, c := range buf {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			buf[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(buf)
}

// Cosmos derives the bech32 account address from a 33-byte compressed
// secp256k1 public key. The Cosmos Hub uses hrp "cosmos"; other zones pass
// their own prefix.
func Cosmos(compressedPub []byte, hrp string) (string, error) {
	if len(compressedPub) != 33 {
		return "", fmt.Errorf("address: compressed public key must be 33 bytes, got %d", len(compressedPub))
	}
	sum := sha256.Sum256(compressedPub)
	r := ripemd160.New()
	r.Write(sum[:])
	return bech32Encode(hrp, r.Sum(nil))
}

// DecodeCosmos parses a bech32 account address and returns its prefix and
// the 20-byte key hash it carries. Checksum failures, mixed case, and
// payloads of any other length are rejected.
func DecodeCosmos(addr string) (hrp string, keyHash []byte, err error) {
	hrp, payload, err := decodeBech32(addr)
	if err != nil {
		return "", nil, fmt.Errorf("address: %w", err)
	}
	if len(payload) != ripemd160.Size {
		return "", nil, fmt.Errorf("address: account payload must be %d bytes, got %d", ripemd160.Size, len(payload))
	}
	return hrp, payload, nil
}

// Solana base58-encodes a 32-byte Ed25519 public key.
func Solana(pub []byte) (string, error) {
	if len(pub) != 32 {
		return "", fmt.Errorf("address: public key must be 32 bytes, got %d", len(pub))
	}
	return base58.Encode(pub), nil
}

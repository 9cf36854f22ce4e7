package bip39

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of an expanded seed in bytes (512 bits).
const SeedSize = 64

// pbkdf2Rounds is the iteration count fixed by BIP-39.
const pbkdf2Rounds = 2048

// SeedFromMnemonic validates the mnemonic and expands it with the optional
// passphrase into a 64-byte seed via PBKDF2-HMAC-SHA512. Both inputs are
// NFKD-normalized and the mnemonic is re-joined with single spaces.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	return expandSeed(mnemonic, passphrase), nil
}

// SeedInto is the non-raising form of SeedFromMnemonic. It writes the seed
// into dst, which must be exactly SeedSize bytes, and reports success.
func SeedInto(dst []byte, mnemonic, passphrase string) bool {
	if len(dst) != SeedSize {
		return false
	}
	if ValidateMnemonic(mnemonic) != nil {
		return false
	}
	seed := expandSeed(mnemonic, passphrase)
	copy(dst, seed)
	for i := range seed {
		seed[i] = 0
	}
	return true
}

func expandSeed(mnemonic, passphrase string) []byte {
	m := norm.NFKD.String(strings.Join(strings.Fields(mnemonic), " "))
	p := norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(m), []byte("mnemonic"+p), pbkdf2Rounds, SeedSize, sha512.New)
}

// Package bip39 validates English BIP-39 mnemonics and expands them into
// 64-byte seeds.
//
// Only the English wordlist is supported. Error messages never contain
// mnemonic words or seed bytes; failures report word positions and the word
// count only.
package bip39

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidMnemonic is returned for a wrong word count, a word outside the
// wordlist, or a checksum mismatch.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// wordBits is the number of entropy+checksum bits each word encodes.
const wordBits = 11

// wordIndex maps each English wordlist entry to its 11-bit index.
var wordIndex = func() map[string]int {
	m := make(map[string]int, len(wordlists.English))
	for i, w := range wordlists.English {
		m[w] = i
	}
	return m
}()

// ValidateMnemonic checks word count, wordlist membership, and the BIP-39
// checksum. The mnemonic is NFKD-normalized before lookup.
func ValidateMnemonic(mnemonic string) error {
	words := strings.Fields(norm.NFKD.String(mnemonic))
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return fmt.Errorf("%w: %d words", ErrInvalidMnemonic, len(words))
	}

	// Concatenate the 11-bit word indices into one bit string.
	var bits big.Int
	for i, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return fmt.Errorf("%w: unknown word at position %d", ErrInvalidMnemonic, i)
		}
		bits.Lsh(&bits, wordBits)
		bits.Or(&bits, big.NewInt(int64(idx)))
	}

	// The trailing len/3 bits are the checksum over the leading entropy.
	csBits := uint(len(words) / 3)
	entBits := uint(len(words)*wordBits) - csBits

	var checksum big.Int
	checksum.And(&bits, big.NewInt(int64(1<<csBits-1)))
	entropy := make([]byte, entBits/8)
	bits.Rsh(&bits, csBits).FillBytes(entropy)

	sum := sha256.Sum256(entropy)
	if byte(checksum.Uint64()) != sum[0]>>(8-csBits) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}
	return nil
}

// IsMnemonicValid reports whether mnemonic passes ValidateMnemonic.
func IsMnemonicValid(mnemonic string) bool {
	return ValidateMnemonic(mnemonic) == nil
}

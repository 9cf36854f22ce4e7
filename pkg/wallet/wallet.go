// Package wallet builds signing wallets from raw private keys, seeds, or
// BIP-39 mnemonics.
//
// Two wallet shapes exist: WeierstrassWallet for secp256k1 and NIST P-256,
// and EdwardsWallet for Ed25519. Both materialize the private key once at
// construction and pre-compute every public-key encoding, so public-key
// accessors and address derivation never repeat curve multiplications. Key buffers are
// write-once; a wallet is safe for concurrent readers until Zero is called.
package wallet

import (
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
)

// SignatureSize is the length of a non-recoverable signature on every
// supported curve.
const SignatureSize = 64

// deriveKey walks path from seed and returns the private key, discarding
// the chain code. The caller owns the key and must zero it after use.
func deriveKey(c *slip10.Curve, seed []byte, path bip44.Path) ([]byte, error) {
	key, chainCode, err := slip10.DerivePath(c, seed, path)
	if err != nil {
		return nil, err
	}
	slip10.Zero(chainCode)
	return key, nil
}

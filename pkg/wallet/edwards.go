package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip39"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
)

// EdPubKeySize is the length of an Ed25519 public key.
const EdPubKeySize = 32

// EdwardsWallet signs with an Ed25519 key. Unlike the Weierstrass wallets
// it signs whole messages, not digests.
type EdwardsWallet struct {
	curve *slip10.Curve
	priv  [slip10.KeySize]byte
	pub   [EdPubKeySize]byte
}

// NewEdwards builds a wallet around an existing 32-byte private key.
func NewEdwards(c *slip10.Curve, priv []byte) (*EdwardsWallet, error) {
	if c != slip10.Ed25519 {
		return nil, fmt.Errorf("wallet: %s is not an Edwards curve", c.Name())
	}
	if len(priv) != slip10.KeySize {
		return nil, fmt.Errorf("wallet: private key must be %d bytes, got %d", slip10.KeySize, len(priv))
	}
	w := &EdwardsWallet{curve: c}
	copy(w.priv[:], priv)

	pub, err := c.PublicKey(w.priv[:])
	if err != nil {
		w.Zero()
		return nil, fmt.Errorf("wallet: compute public key: %w", err)
	}
	copy(w.pub[:], pub)
	return w, nil
}

// EdwardsFromSeed derives the key at path from seed.
func EdwardsFromSeed(c *slip10.Curve, seed []byte, path bip44.Path) (*EdwardsWallet, error) {
	key, err := deriveKey(c, seed, path)
	if err != nil {
		return nil, err
	}
	defer slip10.Zero(key)
	return NewEdwards(c, key)
}

// EdwardsFromSeedPath is EdwardsFromSeed with a textual path.
func EdwardsFromSeedPath(c *slip10.Curve, seed []byte, path string) (*EdwardsWallet, error) {
	p, err := bip44.Parse(path)
	if err != nil {
		return nil, err
	}
	return EdwardsFromSeed(c, seed, p)
}

// EdwardsFromMnemonic expands the mnemonic and passphrase to a seed and
// derives the key at path.
func EdwardsFromMnemonic(c *slip10.Curve, mnemonic, passphrase string, path bip44.Path) (*EdwardsWallet, error) {
	seed, err := bip39.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer slip10.Zero(seed)
	return EdwardsFromSeed(c, seed, path)
}

// EdwardsFromMnemonicPath is EdwardsFromMnemonic with a textual path.
func EdwardsFromMnemonicPath(c *slip10.Curve, mnemonic, passphrase, path string) (*EdwardsWallet, error) {
	p, err := bip44.Parse(path)
	if err != nil {
		return nil, err
	}
	return EdwardsFromMnemonic(c, mnemonic, passphrase, p)
}

// Curve returns the wallet's curve descriptor.
func (w *EdwardsWallet) Curve() *slip10.Curve {
	return w.curve
}

// PublicKey returns a copy of the 32-byte public key.
func (w *EdwardsWallet) PublicKey() []byte {
	pub := make([]byte, EdPubKeySize)
	copy(pub, w.pub[:])
	return pub
}

// PrivateKey returns a copy of the 32-byte private key. The caller owns the
// copy and should zero it after use.
func (w *EdwardsWallet) PrivateKey() []byte {
	priv := make([]byte, slip10.KeySize)
	copy(priv, w.priv[:])
	return priv
}

// Sign produces the 64-byte Ed25519 signature over data.
func (w *EdwardsWallet) Sign(data []byte) ([]byte, error) {
	return w.curve.Sign(w.priv[:], data)
}

// SignInto writes the signature into dst, which must be exactly 64 bytes.
// It reports false on any failure.
func (w *EdwardsWallet) SignInto(data, dst []byte) bool {
	if len(dst) != SignatureSize {
		return false
	}
	sig, err := w.curve.Sign(w.priv[:], data)
	if err != nil {
		return false
	}
	copy(dst, sig)
	slip10.Zero(sig)
	return true
}

// Verify checks a signature against the wallet's own public key.
func (w *EdwardsWallet) Verify(data, sig []byte) bool {
	return w.curve.Verify(w.pub[:], data, sig)
}

// Zero wipes the private key. The wallet must not be used afterwards.
func (w *EdwardsWallet) Zero() {
	slip10.Zero(w.priv[:])
}

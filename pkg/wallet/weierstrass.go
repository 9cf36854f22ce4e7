package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip39"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
)

// Weierstrass public key sizes.
const (
	CompressedPubKeySize   = 33
	UncompressedPubKeySize = 65
	RecoverableSigSize     = 65
)

// WeierstrassWallet signs with a secp256k1 or NIST P-256 key. Both
// public-key encodings are computed at construction: Ethereum-style address
// derivation needs the uncompressed form, Cosmos needs the compressed one.
type WeierstrassWallet struct {
	curve           *slip10.Curve
	priv            [slip10.KeySize]byte
	pubCompressed   [CompressedPubKeySize]byte
	pubUncompressed [UncompressedPubKeySize]byte
}

// NewWeierstrass builds a wallet around an existing 32-byte private key.
func NewWeierstrass(c *slip10.Curve, priv []byte) (*WeierstrassWallet, error) {
	if c != slip10.Secp256k1 && c != slip10.NistP256 {
		return nil, fmt.Errorf("wallet: %s is not a Weierstrass curve", c.Name())
	}
	if len(priv) != slip10.KeySize {
		return nil, fmt.Errorf("wallet: private key must be %d bytes, got %d", slip10.KeySize, len(priv))
	}
	w := &WeierstrassWallet{curve: c}
	copy(w.priv[:], priv)

	comp, err := c.PublicKey(w.priv[:])
	if err != nil {
		w.Zero()
		return nil, fmt.Errorf("wallet: compute public key: %w", err)
	}
	uncomp, err := c.PublicKeyUncompressed(w.priv[:])
	if err != nil {
		w.Zero()
		return nil, fmt.Errorf("wallet: compute public key: %w", err)
	}
	copy(w.pubCompressed[:], comp)
	copy(w.pubUncompressed[:], uncomp)
	return w, nil
}

// WeierstrassFromSeed derives the key at path from seed.
func WeierstrassFromSeed(c *slip10.Curve, seed []byte, path bip44.Path) (*WeierstrassWallet, error) {
	key, err := deriveKey(c, seed, path)
	if err != nil {
		return nil, err
	}
	defer slip10.Zero(key)
	return NewWeierstrass(c, key)
}

// WeierstrassFromSeedPath is WeierstrassFromSeed with a textual path.
func WeierstrassFromSeedPath(c *slip10.Curve, seed []byte, path string) (*WeierstrassWallet, error) {
	p, err := bip44.Parse(path)
	if err != nil {
		return nil, err
	}
	return WeierstrassFromSeed(c, seed, p)
}

// WeierstrassFromMnemonic expands the mnemonic and passphrase to a seed and
// derives the key at path.
func WeierstrassFromMnemonic(c *slip10.Curve, mnemonic, passphrase string, path bip44.Path) (*WeierstrassWallet, error) {
	seed, err := bip39.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer slip10.Zero(seed)
	return WeierstrassFromSeed(c, seed, path)
}

// WeierstrassFromMnemonicPath is WeierstrassFromMnemonic with a textual path.
func WeierstrassFromMnemonicPath(c *slip10.Curve, mnemonic, passphrase, path string) (*WeierstrassWallet, error) {
	p, err := bip44.Parse(path)
	if err != nil {
		return nil, err
	}
	return WeierstrassFromMnemonic(c, mnemonic, passphrase, p)
}

// Curve returns the wallet's curve descriptor.
func (w *WeierstrassWallet) Curve() *slip10.Curve {
	return w.curve
}

// PublicKey returns a copy of the 33-byte compressed public key.
func (w *WeierstrassWallet) PublicKey() []byte {
	pub := make([]byte, CompressedPubKeySize)
	copy(pub, w.pubCompressed[:])
	return pub
}

// PublicKeyUncompressed returns a copy of the 65-byte uncompressed public
// key.
func (w *WeierstrassWallet) PublicKeyUncompressed() []byte {
	pub := make([]byte, UncompressedPubKeySize)
	copy(pub, w.pubUncompressed[:])
	return pub
}

// PrivateKey returns a copy of the 32-byte private key. The caller owns the
// copy and should zero it after use.
func (w *WeierstrassWallet) PrivateKey() []byte {
	priv := make([]byte, slip10.KeySize)
	copy(priv, w.priv[:])
	return priv
}

// Sign produces the 64-byte r || s signature over a 32-byte digest.
func (w *WeierstrassWallet) Sign(digest []byte) ([]byte, error) {
	return w.curve.Sign(w.priv[:], digest)
}

// SignInto writes the signature into dst, which must be exactly 64 bytes.
// It reports false on any failure.
func (w *WeierstrassWallet) SignInto(digest, dst []byte) bool {
	if len(dst) != SignatureSize {
		return false
	}
	sig, err := w.curve.Sign(w.priv[:], digest)
	if err != nil {
		return false
	}
	copy(dst, sig)
	slip10.Zero(sig)
	return true
}

// SignRecoverable produces the 65-byte r || s || v signature. It fails for
// any curve but secp256k1.
func (w *WeierstrassWallet) SignRecoverable(digest []byte) ([]byte, error) {
	return w.curve.SignRecoverable(w.priv[:], digest)
}

// Verify checks a signature against the wallet's own public key.
func (w *WeierstrassWallet) Verify(digest, sig []byte) bool {
	return w.curve.Verify(w.pubCompressed[:], digest, sig)
}

// Zero wipes the private key. The wallet must not be used afterwards.
func (w *WeierstrassWallet) Zero() {
	slip10.Zero(w.priv[:])
}

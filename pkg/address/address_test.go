package address

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/wallet"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestEthereum_KnownVector(t *testing.T) {
	w, err := wallet.WeierstrassFromMnemonic(slip10.Secp256k1, testMnemonic, "", bip44.Ethereum(0))
	if err != nil {
		t.Fatalf("wallet error: %v", err)
	}
	addr, err := Ethereum(w.PublicKeyUncompressed())
	if err != nil {
		t.Fatalf("Ethereum() error: %v", err)
	}
	want := "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	if addr != want {
		t.Errorf("address = %s, want %s", addr, want)
	}
}

func TestEthereum_Invalid(t *testing.T) {
	if _, err := Ethereum(make([]byte, 33)); err == nil {
		t.Error("Ethereum() should reject a compressed key")
	}
	bad := make([]byte, 65)
	bad[0] = 0x02
	if _, err := Ethereum(bad); err == nil {
		t.Error("Ethereum() should reject a wrong prefix")
	}
}

func TestCosmos_KnownVector(t *testing.T) {
	w, err := wallet.WeierstrassFromMnemonic(slip10.Secp256k1, testMnemonic, "", bip44.Cosmos(0))
	if err != nil {
		t.Fatalf("wallet error: %v", err)
	}
	addr, err := Cosmos(w.PublicKey(), CosmosHRP)
	if err != nil {
		t.Fatalf("Cosmos() error: %v", err)
	}
	want := "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"
	if addr != want {
		t.Errorf("address = %s, want %s", addr, want)
	}
}

func TestCosmos_CustomHRP(t *testing.T) {
	w, err := wallet.WeierstrassFromMnemonic(slip10.Secp256k1, testMnemonic, "", bip44.Cosmos(0))
	if err != nil {
		t.Fatalf("wallet error: %v", err)
	}
	addr, err := Cosmos(w.PublicKey(), "osmo")
	if err != nil {
		t.Fatalf("Cosmos() error: %v", err)
	}
	hrp, payload, err := DecodeCosmos(addr)
	if err != nil {
		t.Fatalf("DecodeCosmos() error: %v", err)
	}
	if hrp != "osmo" {
		t.Errorf("hrp = %q, want osmo", hrp)
	}
	if len(payload) != 20 {
		t.Errorf("payload length = %d, want 20", len(payload))
	}
}

func TestCosmos_Invalid(t *testing.T) {
	if _, err := Cosmos(make([]byte, 65), CosmosHRP); err == nil {
		t.Error("Cosmos() should reject an uncompressed key")
	}
	if _, err := Cosmos(make([]byte, 33), ""); err == nil {
		t.Error("Cosmos() should reject an empty HRP")
	}
}

func TestSolana_KnownVector(t *testing.T) {
	w, err := wallet.EdwardsFromMnemonic(slip10.Ed25519, testMnemonic, "", bip44.Solana(0))
	if err != nil {
		t.Fatalf("wallet error: %v", err)
	}
	addr, err := Solana(w.PublicKey())
	if err != nil {
		t.Fatalf("Solana() error: %v", err)
	}
	want := "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk"
	if addr != want {
		t.Errorf("address = %s, want %s", addr, want)
	}
}

func TestSolana_Invalid(t *testing.T) {
	if _, err := Solana(make([]byte, 31)); err == nil {
		t.Error("Solana() should reject a short key")
	}
}

func TestBech32Encode_FixedVector(t *testing.T) {
	data := []byte{0x00, 0x01, 0xfe, 0xff, 0x42, 0x99, 0x10, 0x20, 0x30, 0x40,
		0x50, 0x60, 0x70, 0x80, 0x90, 0xa0, 0xb0, 0xc0, 0xd0, 0xe0}
	enc, err := bech32Encode("klg", data)
	if err != nil {
		t.Fatalf("bech32Encode() error: %v", err)
	}
	want := "klg1qqqlal6znygzqvzq2ps8pqys5zcvp58qlpw3s6"
	if enc != want {
		t.Errorf("encoded = %q, want %q", enc, want)
	}

	hrp, got, err := DecodeCosmos(enc)
	if err != nil {
		t.Fatalf("DecodeCosmos(%q) error: %v", enc, err)
	}
	if hrp != "klg" {
		t.Errorf("hrp = %q, want klg", hrp)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("payload = %x, want %x", got, data)
	}
}

func TestBech32Encode_RejectsBadPrefix(t *testing.T) {
	payload := make([]byte, 20)
	if _, err := bech32Encode("", payload); err == nil {
		t.Error("empty prefix should fail")
	}
	if _, err := bech32Encode("KLG", payload); err == nil {
		t.Error("uppercase prefix should fail")
	}
	if _, err := bech32Encode("k g", payload); err == nil {
		t.Error("prefix with space should fail")
	}
}

func TestDecodeCosmos_UppercaseInput(t *testing.T) {
	// All-uppercase bech32 is valid and folds to lowercase.
	hrp, payload, err := DecodeCosmos(strings.ToUpper("cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"))
	if err != nil {
		t.Fatalf("DecodeCosmos() error: %v", err)
	}
	if hrp != "cosmos" {
		t.Errorf("hrp = %q, want cosmos", hrp)
	}
	if len(payload) != 20 {
		t.Errorf("payload length = %d, want 20", len(payload))
	}
}

func TestDecodeCosmos_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no separator", "cosmosqqqq"},
		{"mixed case", "Cosmos1qqqqqqqqq"},
		{"bad checksum", "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal5"},
		{"invalid char", "cosmos1bqqqqqqqq"},
		{"short payload", "cosmos1qqqqqqqqqqqqqqqq005k5c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeCosmos(tt.in); err == nil {
				t.Errorf("DecodeCosmos(%q) should fail", tt.in)
			}
		})
	}
}

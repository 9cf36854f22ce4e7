// derive_key.go prints the pubkey and Ethereum address for a mnemonic file.
// Usage: go run scripts/derive_key.go <mnemonic-file> [path]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-hdwallet/pkg/address"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <mnemonic-file> [path]")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	path := "m/44'/60'/0'/0/0"
	if len(os.Args) > 2 {
		path = os.Args[2]
	}
	mnemonic := strings.TrimSpace(string(data))
	w, err := wallet.WeierstrassFromMnemonicPath(slip10.Secp256k1, mnemonic, "", path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer w.Zero()
	addr, err := address.Ethereum(w.PublicKeyUncompressed())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(w.PublicKey()))
	fmt.Printf("address=%s\n", addr)
}

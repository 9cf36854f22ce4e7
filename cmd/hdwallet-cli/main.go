// hdwallet-cli derives hierarchical deterministic keys, signatures, and
// addresses from BIP-39 mnemonics or raw seeds.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-hdwallet/internal/log"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/address"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip39"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/bip44"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/slip10"
	"github.com/Klingon-tech/klingnet-hdwallet/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	logLevel := "info"
	jsonLogs := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			jsonLogs = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Setup(logLevel, jsonLogs)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "derive":
		cmdDerive(cmdArgs)
	case "seed":
		cmdSeed(cmdArgs)
	case "sign":
		cmdSign(cmdArgs)
	case "path":
		cmdPath(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hdwallet-cli [global flags] <command> [flags]

Global flags:
  --log-level <lvl>   debug, info, warn, or error (default: info)
  --json-logs         Emit JSON logs instead of colored console output

Commands:
  derive --curve <c> --path <p> (--mnemonic-file <f> | --seed <hex>)
         [--passphrase-prompt] [--address <chain>] [--hrp <hrp>]
         [--show-private]
                        Derive the key at a path and print its public forms.
                        Curves: secp256k1, nist256p1, ed25519.
                        Address chains: ethereum, cosmos, solana.
  seed   (--mnemonic-file <f>) [--passphrase-prompt]
                        Expand a mnemonic into its 64-byte seed (hex).
  sign   --curve <c> --path <p> --data <hex>
         (--mnemonic-file <f> | --seed <hex>) [--recoverable]
                        Derive a key and sign the given data with it.
  path   <path>         Parse a derivation path and print its indices and
                        canonical form.

The mnemonic file contains the space-separated words; pass "-" to read it
from stdin. Private material is only printed when explicitly requested.
`)
}

func cmdDerive(args []string) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	curveName := fs.String("curve", "secp256k1", "curve: secp256k1, nist256p1, or ed25519")
	pathStr := fs.String("path", "", "derivation path, e.g. m/44'/60'/0'/0/0")
	mnemonicFile := fs.String("mnemonic-file", "", "file holding the mnemonic ('-' for stdin)")
	seedHex := fs.String("seed", "", "hex seed (alternative to --mnemonic-file)")
	promptPass := fs.Bool("passphrase-prompt", false, "prompt for a BIP-39 passphrase")
	addrChain := fs.String("address", "", "also print an address: ethereum, cosmos, or solana")
	hrp := fs.String("hrp", address.CosmosHRP, "bech32 prefix for cosmos addresses")
	showPrivate := fs.Bool("show-private", false, "print the derived private key")
	fs.Parse(args)

	curve := curveByName(*curveName)
	if *pathStr == "" {
		fatal("--path is required")
	}

	seed := resolveSeed(*mnemonicFile, *seedHex, *promptPass)
	defer slip10.Zero(seed)

	done := log.Benchmark("derive")
	key, chainCode, err := slip10.DerivePathString(curve, seed, *pathStr)
	if err != nil {
		fatal("derive: %v", err)
	}
	done()
	defer slip10.Zero(key)
	defer slip10.Zero(chainCode)

	pub, err := curve.PublicKey(key)
	if err != nil {
		fatal("public key: %v", err)
	}
	log.Derive.Debug().
		Str("curve", curve.Name()).
		Str("path", *pathStr).
		Str("pubkey_fingerprint", log.Fingerprint(pub)).
		Msg("derived key")
	fmt.Printf("curve:       %s\n", curve.Name())
	fmt.Printf("path:        %s\n", *pathStr)
	fmt.Printf("public-key:  %s\n", hex.EncodeToString(pub))
	if curve != slip10.Ed25519 {
		upub, err := curve.PublicKeyUncompressed(key)
		if err != nil {
			fatal("public key: %v", err)
		}
		fmt.Printf("public-key-uncompressed: %s\n", hex.EncodeToString(upub))
	}
	if *showPrivate {
		log.CLI.Warn().Msg("printing private key material to stdout")
		fmt.Printf("private-key: %s\n", hex.EncodeToString(key))
		fmt.Printf("chain-code:  %s\n", hex.EncodeToString(chainCode))
	}

	if *addrChain != "" {
		printAddress(curve, key, *addrChain, *hrp)
	}
}

func printAddress(curve *slip10.Curve, key []byte, chain, hrp string) {
	var addr string
	var err error
	switch chain {
	case "ethereum":
		if curve != slip10.Secp256k1 {
			fatal("ethereum addresses require secp256k1")
		}
		var upub []byte
		if upub, err = curve.PublicKeyUncompressed(key); err == nil {
			addr, err = address.Ethereum(upub)
		}
	case "cosmos":
		if curve != slip10.Secp256k1 {
			fatal("cosmos addresses require secp256k1")
		}
		var pub []byte
		if pub, err = curve.PublicKey(key); err == nil {
			addr, err = address.Cosmos(pub, hrp)
		}
	case "solana":
		if curve != slip10.Ed25519 {
			fatal("solana addresses require ed25519")
		}
		var pub []byte
		if pub, err = curve.PublicKey(key); err == nil {
			addr, err = address.Solana(pub)
		}
	default:
		fatal("unknown address chain: %s", chain)
	}
	if err != nil {
		fatal("address: %v", err)
	}
	fmt.Printf("address:     %s\n", addr)
}

func cmdSeed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	mnemonicFile := fs.String("mnemonic-file", "", "file holding the mnemonic ('-' for stdin)")
	promptPass := fs.Bool("passphrase-prompt", false, "prompt for a BIP-39 passphrase")
	fs.Parse(args)

	if *mnemonicFile == "" {
		fatal("--mnemonic-file is required")
	}
	seed := resolveSeed(*mnemonicFile, "", *promptPass)
	defer slip10.Zero(seed)
	fmt.Printf("%s\n", hex.EncodeToString(seed))
}

func cmdPath(args []string) {
	if len(args) != 1 {
		fatal("usage: hdwallet-cli path <path>")
	}
	p, err := bip44.Parse(args[0])
	if err != nil {
		fatal("parse: %v", err)
	}
	for i, index := range p {
		if bip44.IsHardened(index) {
			fmt.Printf("[%d] %d' (0x%08x)\n", i, index-bip44.HardenedOffset, index)
		} else {
			fmt.Printf("[%d] %d (0x%08x)\n", i, index, index)
		}
	}
	fmt.Printf("canonical: %s\n", p.String())
}

// resolveSeed turns the mnemonic-file/seed-hex flags into seed bytes.
func resolveSeed(mnemonicFile, seedHex string, promptPass bool) []byte {
	switch {
	case mnemonicFile != "" && seedHex != "":
		fatal("--mnemonic-file and --seed are mutually exclusive")
	case seedHex != "":
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			fatal("invalid seed hex: %v", err)
		}
		return seed
	case mnemonicFile != "":
		mnemonic := readMnemonic(mnemonicFile)
		passphrase := ""
		if promptPass {
			pass, err := readPassword("Passphrase: ")
			if err != nil {
				fatal("read passphrase: %v", err)
			}
			passphrase = string(pass)
		}
		seed, err := bip39.SeedFromMnemonic(mnemonic, passphrase)
		if err != nil {
			fatal("mnemonic: %v", err)
		}
		return seed
	}
	fatal("one of --mnemonic-file or --seed is required")
	return nil
}

func readMnemonic(file string) string {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		fatal("read mnemonic: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// cmdSign derives a key and signs caller-supplied data with it. The
// Weierstrass curves expect a 32-byte digest; ed25519 signs the raw bytes.
func cmdSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	curveName := fs.String("curve", "secp256k1", "curve: secp256k1, nist256p1, or ed25519")
	pathStr := fs.String("path", "", "derivation path")
	mnemonicFile := fs.String("mnemonic-file", "", "file holding the mnemonic ('-' for stdin)")
	seedHex := fs.String("seed", "", "hex seed (alternative to --mnemonic-file)")
	promptPass := fs.Bool("passphrase-prompt", false, "prompt for a BIP-39 passphrase")
	dataHex := fs.String("data", "", "hex data to sign (32-byte digest for Weierstrass curves)")
	recoverable := fs.Bool("recoverable", false, "emit a 65-byte recoverable signature (secp256k1)")
	fs.Parse(args)

	curve := curveByName(*curveName)
	if *pathStr == "" {
		fatal("--path is required")
	}
	data, err := hex.DecodeString(*dataHex)
	if err != nil {
		fatal("invalid data hex: %v", err)
	}

	seed := resolveSeed(*mnemonicFile, *seedHex, *promptPass)
	defer slip10.Zero(seed)

	var sig []byte
	if curve == slip10.Ed25519 {
		w, err := wallet.EdwardsFromSeedPath(curve, seed, *pathStr)
		if err != nil {
			fatal("wallet: %v", err)
		}
		defer w.Zero()
		if sig, err = w.Sign(data); err != nil {
			fatal("sign: %v", err)
		}
	} else {
		w, err := wallet.WeierstrassFromSeedPath(curve, seed, *pathStr)
		if err != nil {
			fatal("wallet: %v", err)
		}
		defer w.Zero()
		if *recoverable {
			sig, err = w.SignRecoverable(data)
		} else {
			sig, err = w.Sign(data)
		}
		if err != nil {
			fatal("sign: %v", err)
		}
	}

	log.Wallet.Debug().
		Str("curve", curve.Name()).
		Int("signature_bytes", len(sig)).
		Str("sig_fingerprint", log.Fingerprint(sig)).
		Msg("signed")
	fmt.Printf("%s\n", hex.EncodeToString(sig))
}

func curveByName(name string) *slip10.Curve {
	switch name {
	case "secp256k1":
		return slip10.Secp256k1
	case "nist256p1", "p256":
		return slip10.NistP256
	case "ed25519":
		return slip10.Ed25519
	default:
		fatal("unknown curve: %s", name)
		return nil
	}
}

// ── Password helper ─────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

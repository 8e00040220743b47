// Command mayo is the external CLI collaborator named in spec §1/§6:
// argument parsing and file/stdin/stdout I/O live here, outside the
// core. It follows the teacher CLI's subcommand dispatch
// (os.Args[1] switch, flag.NewFlagSet per subcommand, log.Fatalf for
// fatal errors) and its hex-on-stdout / raw-on-file output split.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	mayo "mayo-signature"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mayo <keygen|sign|verify> [options]

Subcommands:
  keygen   Generate a MAYO keypair
           --variant  <MAYO1|MAYO2>   variant name (default MAYO1)
           --sk       <path|->        secret key output path ("-" = stdout, hex)
           --pk       <path|->        public key output path ("-" = stdout, hex)

  sign     Sign a message
           --variant  <MAYO1|MAYO2>   variant name (default MAYO1)
           --sk       <path|->        secret key input path ("-" = stdin, hex)
           --in       <path|->        message input path ("-" = stdin)
           --sig      <path|->        signature output path ("-" = stdout, hex)

  verify   Verify a signature
           --variant  <MAYO1|MAYO2>   variant name (default MAYO1)
           --pk       <path|->        public key input path ("-" = stdin, hex)
           --in       <path|->        message input path ("-" = stdin)
           --sig      <path|->        signature input path ("-" = stdin, hex)`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "keygen":
		runKeygen(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	default:
		usage()
	}
}

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	variant := fs.String("variant", "MAYO1", "variant name")
	skPath := fs.String("sk", "-", "secret key output path")
	pkPath := fs.String("pk", "-", "public key output path")
	fs.Parse(args)

	csk, cpk, err := mayo.Keypair(*variant)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	if err := writeKeyOutput(*skPath, csk); err != nil {
		log.Fatalf("keygen: write secret key: %v", err)
	}
	if err := writeKeyOutput(*pkPath, cpk); err != nil {
		log.Fatalf("keygen: write public key: %v", err)
	}
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	variant := fs.String("variant", "MAYO1", "variant name")
	skPath := fs.String("sk", "-", "secret key input path")
	inPath := fs.String("in", "-", "message input path")
	sigPath := fs.String("sig", "-", "signature output path")
	fs.Parse(args)

	sk, err := readKeyInput(*skPath)
	if err != nil {
		log.Fatalf("sign: read secret key: %v", err)
	}
	msg, err := readBytes(*inPath)
	if err != nil {
		log.Fatalf("sign: read message: %v", err)
	}
	sig, err := mayo.Sign(sk, msg, *variant)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	if err := writeKeyOutput(*sigPath, sig); err != nil {
		log.Fatalf("sign: write signature: %v", err)
	}
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	variant := fs.String("variant", "MAYO1", "variant name")
	pkPath := fs.String("pk", "-", "public key input path")
	inPath := fs.String("in", "-", "message input path")
	sigPath := fs.String("sig", "-", "signature input path")
	fs.Parse(args)

	pk, err := readKeyInput(*pkPath)
	if err != nil {
		log.Fatalf("verify: read public key: %v", err)
	}
	msg, err := readBytes(*inPath)
	if err != nil {
		log.Fatalf("verify: read message: %v", err)
	}
	sig, err := readKeyInput(*sigPath)
	if err != nil {
		log.Fatalf("verify: read signature: %v", err)
	}

	signedMessage := append(append([]byte(nil), sig...), msg...)
	_, ok, err := mayo.Open(pk, signedMessage, *variant)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Verification FAILED")
		os.Exit(1)
	}
	fmt.Println("signature verified")
}

// writeKeyOutput writes raw bytes to a file, or hex to stdout when
// path is "-" (spec §6: "signatures on stdout are hex-encoded, on
// files are raw bytes" — applied uniformly to every artifact here).
func writeKeyOutput(path string, data []byte) error {
	if path == "-" {
		_, err := fmt.Println(hex.EncodeToString(data))
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// readKeyInput reads hex from stdin when path is "-", raw bytes from a file otherwise.
func readKeyInput(path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return hex.DecodeString(trimNewline(string(raw)))
	}
	return os.ReadFile(path)
}

// readBytes reads a message verbatim: stdin for "-", raw file contents otherwise.
func readBytes(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

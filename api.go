// Package mayo is the public entry point to the MAYO signature core
// (spec §4.9 / C10): Keypair, Sign and Open. It resolves a named
// variant, validates boundary inputs, and maps internal failures to
// the error taxonomy of §7 — the internal/mayo, internal/gf16,
// internal/codec and internal/kdf packages never see a variant name,
// only a resolved params.Params.
package mayo

import (
	"mayo-signature/internal/mayo"
	"mayo-signature/internal/mayoerr"
	"mayo-signature/internal/params"
)

// CompactSecretKey, CompactPublicKey and Signature re-export the core's
// opaque byte-wrapped types so callers never import internal/mayo directly.
type (
	CompactSecretKey = mayo.CompactSecretKey
	CompactPublicKey = mayo.CompactPublicKey
	Signature        = mayo.Signature
)

// Keypair generates a fresh (secret, public) key pair for the named
// variant (spec §4.9 keypair). Fails with UnknownVariant on an
// unrecognized name.
func Keypair(variant string) (CompactSecretKey, CompactPublicKey, error) {
	par, err := params.Lookup(variant)
	if err != nil {
		return nil, nil, mayoerr.Wrap(mayoerr.UnknownVariant, "keypair", err)
	}
	return mayo.CompactKeyGen(par, nil)
}

// Sign validates |cskBytes| = sk_seed_bytes, expands the secret key,
// and signs msg under the named variant (spec §4.9 sign).
func Sign(cskBytes []byte, msg []byte, variant string) (Signature, error) {
	par, err := params.Lookup(variant)
	if err != nil {
		return nil, mayoerr.Wrap(mayoerr.UnknownVariant, "sign", err)
	}
	if len(cskBytes) != par.SKSeedBytes {
		return nil, mayoerr.New(mayoerr.InvalidKeyFormat, "secret key has wrong length for variant")
	}
	return mayo.Sign(mayo.CompactSecretKey(cskBytes), msg, par)
}

// Open verifies signedMessage = signature || original_message against
// cpkBytes under the named variant and returns the original message
// iff verification succeeds (spec §4.9 open). A verification failure
// is reported as (nil, false, nil), not an error.
func Open(cpkBytes []byte, signedMessage []byte, variant string) (msg []byte, ok bool, err error) {
	par, err := params.Lookup(variant)
	if err != nil {
		return nil, false, mayoerr.Wrap(mayoerr.UnknownVariant, "open", err)
	}
	sigLen := par.SigBytes()
	if len(signedMessage) < sigLen {
		return nil, false, mayoerr.New(mayoerr.InvalidSignatureFormat, "signed message shorter than one signature")
	}
	sig := mayo.Signature(signedMessage[:sigLen])
	message := signedMessage[sigLen:]

	valid, err := mayo.Verify(mayo.CompactPublicKey(cpkBytes), message, sig, par)
	if err != nil {
		return nil, false, err
	}
	if !valid {
		return nil, false, nil
	}
	return message, true, nil
}

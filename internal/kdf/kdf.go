// Package kdf wraps the two byte oracles the core treats as pure
// functions of their inputs (spec §4.4): a SHAKE-256 XOF and an
// AES-128-CTR keystream. The SHAKE-256 wrapper follows the same
// write-then-squeeze shape as the Fiat-Shamir XOF in the teacher
// repo's PIOP package; AES-128-CTR has no such precedent in that repo
// and is built on crypto/aes+crypto/cipher directly, the way the
// FrodoKEM reference implementation in the retrieval pack does.
package kdf

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Shake256 returns outlen bytes of SHAKE-256(input). A fresh state is
// squeezed each call; SHAKE-256 is a deterministic function of
// (input, outlen) as required by §4.4.
func Shake256(outlen int, inputs ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, in := range inputs {
		if _, err := h.Write(in); err != nil {
			panic(fmt.Errorf("kdf: shake256 write: %w", err))
		}
	}
	out := make([]byte, outlen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("kdf: shake256 read: %w", err))
	}
	return out
}

// AES128CTR returns outlen bytes of AES-128 keystream under key, with
// the 16-byte initial block all zero and the counter occupying the
// last 4 bytes big-endian, starting at 0 (spec §4.4; the 12-byte-zero
// IV prefix choice is fixed here per §9's open question).
func AES128CTR(key []byte, outlen int) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("kdf: aes128ctr: %w", err)
	}
	var iv [aes.BlockSize]byte
	stream := cipher.NewCTR(block, iv[:])
	out := make([]byte, outlen)
	stream.XORKeyStream(out, out)
	return out, nil
}

// DerivePKSeedAndO splits a single SHAKE-256 stream on seedSK into
// (pkSeed, oBytes), per §4.4's derive_pk_seed_and_o.
func DerivePKSeedAndO(seedSK []byte, pkSeedBytes, oBytes int) (pkSeed, o []byte) {
	stream := Shake256(pkSeedBytes+oBytes, seedSK)
	return stream[:pkSeedBytes], stream[pkSeedBytes:]
}

// DeriveP1AndP2 splits an AES-128-CTR stream keyed by seedPK into
// (p1Bytes, p2Bytes). The P2 region begins at the first whole AES
// block at or after the end of P1 (spec §4.4), so the keystream is
// generated in one call long enough to cover both regions with that
// alignment baked in.
func DeriveP1AndP2(seedPK []byte, p1Bytes, p2Bytes int) (p1, p2 []byte, err error) {
	p2Offset := ceilDiv(p1Bytes, aesBlockSize) * aesBlockSize
	stream, err := AES128CTR(seedPK, p2Offset+p2Bytes)
	if err != nil {
		return nil, nil, err
	}
	return stream[:p1Bytes], stream[p2Offset : p2Offset+p2Bytes], nil
}

const aesBlockSize = 16

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// DeriveTargetT returns SHAKE-256(mDigest || salt, outlen), per §4.4's
// derive_target_t.
func DeriveTargetT(mDigest, salt []byte, outlen int) []byte {
	return Shake256(outlen, mDigest, salt)
}

// DigestMessage returns SHAKE-256(msg, digestBytes), per §4.4's digest_message.
func DigestMessage(msg []byte, digestBytes int) []byte {
	return Shake256(digestBytes, msg)
}

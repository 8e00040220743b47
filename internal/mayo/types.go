// Package mayo implements the MAYO signing state machine: key
// expansion (C5), the Gauss-Jordan-backed signer (C7) and verifier
// (C8), built on internal/gf16, internal/codec and internal/kdf.
package mayo

import (
	"mayo-signature/internal/gf16"
	"mayo-signature/internal/params"
)

// CompactSecretKey is an opaque seed_sk byte vector (spec §3). Value
// typed, no shared ownership; Clone returns an independent copy.
type CompactSecretKey []byte

// Clone returns an independent copy.
func (k CompactSecretKey) Clone() CompactSecretKey { return append(CompactSecretKey(nil), k...) }

// CompactPublicKey is seed_pk || p3_bytes (spec §3).
type CompactPublicKey []byte

// Clone returns an independent copy.
func (k CompactPublicKey) Clone() CompactPublicKey { return append(CompactPublicKey(nil), k...) }

// Signature is s_bytes || salt (spec §3).
type Signature []byte

// Clone returns an independent copy.
func (s Signature) Clone() Signature { return append(Signature(nil), s...) }

// expandedSecretKey holds the decoded matrix material derived from a
// CompactSecretKey. It is scoped to a single Sign call and must be
// destroyed on return (§5, §9 Design Notes: "conforming
// implementation zeroizes secret-key-derived buffers").
type expandedSecretKey struct {
	par params.Params

	seedSK []byte
	oBytes []byte
	p1All  []byte
	lAll   []byte

	o  gf16.Matrix   // v x o, read by signWithExpanded to emulsify the oil part into s_V
	p1 []gf16.Matrix // v x v, upper-only (see gf16.Matrix.UpperTriangularOnly), used to evaluate s_V^T P1 s_V
	l  []gf16.Matrix // v x o, m of them
}

// Destroy overwrites every secret-derived buffer with zeros. Matrices
// share no backing array with anything outside this struct (Design
// Note 2: matrices are owned values, never aliased), so zeroing Data
// in place is safe.
func (e *expandedSecretKey) Destroy() {
	if e == nil {
		return
	}
	zero(e.seedSK)
	zero(e.oBytes)
	zero(e.p1All)
	zero(e.lAll)
	zeroMatrix(e.o)
	for i := range e.p1 {
		zeroMatrix(e.p1[i])
	}
	for i := range e.l {
		zeroMatrix(e.l[i])
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroMatrix(m gf16.Matrix) {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

// expandedPublicKey holds the decoded matrix material derived from a
// CompactPublicKey, scoped to a single Verify call.
type expandedPublicKey struct {
	par params.Params

	p1 []gf16.Matrix // v x v, upper-only
	p2 []gf16.Matrix // v x o, dense
	p3 []gf16.Matrix // o x o, upper-only
}

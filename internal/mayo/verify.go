package mayo

import (
	"crypto/subtle"

	"mayo-signature/internal/codec"
	"mayo-signature/internal/gf16"
	"mayo-signature/internal/kdf"
	"mayo-signature/internal/mayoerr"
	"mayo-signature/internal/params"
)

// Verify runs Algorithm 9 against a compact public key (spec §4.8).
// Malformed inputs fail with a tagged error before any arithmetic
// runs; a well-formed but cryptographically invalid signature returns
// (false, nil), matching §7's "VerifyFailed is not an error, just an
// absent result".
func Verify(cpk CompactPublicKey, message []byte, sig Signature, par params.Params) (bool, error) {
	epk, err := expandPK(cpk, par)
	if err != nil {
		return false, err
	}
	return verifyWithExpanded(epk, message, sig, par)
}

// VerifyExpanded runs Algorithm 9 against an already-expanded public
// key (the ExpandPK byte layout).
func VerifyExpanded(expandedPKBytes []byte, message []byte, sig Signature, par params.Params) (bool, error) {
	if len(expandedPKBytes) != par.ExpandedPKBytes() {
		return false, mayoerr.New(mayoerr.InvalidKeyFormat, "expanded public key has wrong length")
	}
	off := 0
	p1Bytes := expandedPKBytes[off : off+par.P1Bytes()]
	off += par.P1Bytes()
	p2Bytes := expandedPKBytes[off : off+par.P2Bytes()]
	off += par.P2Bytes()
	p3Bytes := expandedPKBytes[off : off+par.P3Bytes()]

	p1Mirrored, err := codec.DecodeP1OrP3Matrices(p1Bytes, par.M, par.V)
	if err != nil {
		return false, err
	}
	p2, err := codec.DecodeDenseMatrices(p2Bytes, par.M, par.V, par.O)
	if err != nil {
		return false, err
	}
	p3Mirrored, err := codec.DecodeP1OrP3Matrices(p3Bytes, par.M, par.O)
	if err != nil {
		return false, err
	}
	epk := &expandedPublicKey{par: par, p1: upperOnlyAll(p1Mirrored), p2: p2, p3: upperOnlyAll(p3Mirrored)}
	return verifyWithExpanded(epk, message, sig, par)
}

func verifyWithExpanded(epk *expandedPublicKey, message []byte, sig Signature, par params.Params) (bool, error) {
	if len(sig) != par.SigBytes() {
		return false, mayoerr.New(mayoerr.InvalidSignatureFormat, "signature has wrong length")
	}
	sBytes := sig[:par.SBytes()]
	salt := sig[par.SBytes():]
	s, err := codec.DecodeSVector(sBytes, par.N)
	if err != nil {
		return false, mayoerr.Wrap(mayoerr.InvalidSignatureFormat, "decode s", err)
	}

	mDigest := kdf.DigestMessage(message, par.DigestBytes)
	tBytes := kdf.DeriveTargetT(mDigest, salt, par.TBytes())
	t, err := codec.DecodeVector(tBytes, par.M)
	if err != nil {
		return false, err
	}

	sV := s[:par.V]
	sO := s[par.V:]

	y := make(gf16.Vector, par.M)
	for i := 0; i < par.M; i++ {
		p1SV, err := epk.p1[i].MatVec(sV)
		if err != nil {
			return false, err
		}
		term1, err := gf16.Dot(sV, p1SV)
		if err != nil {
			return false, err
		}

		p2SO, err := epk.p2[i].MatVec(sO)
		if err != nil {
			return false, err
		}
		term2, err := gf16.Dot(sV, p2SO)
		if err != nil {
			return false, err
		}

		p3SO, err := epk.p3[i].MatVec(sO)
		if err != nil {
			return false, err
		}
		term3, err := gf16.Dot(sO, p3SO)
		if err != nil {
			return false, err
		}

		y[i] = gf16.Add(gf16.Add(term1, term2), term3)
	}

	return constantTimeEqual(y, t), nil
}

func constantTimeEqual(y, t gf16.Vector) bool {
	if len(y) != len(t) {
		return false
	}
	yb := make([]byte, len(y))
	tb := make([]byte, len(t))
	for i := range y {
		yb[i] = byte(y[i])
		tb[i] = byte(t[i])
	}
	return subtle.ConstantTimeCompare(yb, tb) == 1
}

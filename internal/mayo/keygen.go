package mayo

import (
	"crypto/rand"
	"io"

	"mayo-signature/internal/codec"
	"mayo-signature/internal/gf16"
	"mayo-signature/internal/kdf"
	"mayo-signature/internal/mayoerr"
	"mayo-signature/internal/params"
)

// CompactKeyGen samples a fresh seed_sk and derives the matching
// compact public key, per spec §4.5 step 1-4.
//
// P3 is not independent SHAKE output: it is computed from the oil
// space O so that O stays isotropic against the public map (the
// construction real MAYO relies on for Sign/Verify to agree). See
// computeP3 below.
func CompactKeyGen(par params.Params, rnd io.Reader) (CompactSecretKey, CompactPublicKey, error) {
	if par.PKSeedBytes != 16 {
		return nil, nil, mayoerr.New(mayoerr.DimensionMismatch, "pk_seed_bytes must be 16 (AES-128 key length)")
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	seedSK := make([]byte, par.SKSeedBytes)
	if _, err := io.ReadFull(rnd, seedSK); err != nil {
		return nil, nil, mayoerr.Wrap(mayoerr.KeygenRandomnessUnavailable, "sample seed_sk", err)
	}

	seedPK, oBytes := kdf.DerivePKSeedAndO(seedSK, par.PKSeedBytes, par.OBytes())
	o, err := codec.DecodeDenseMatrix(oBytes, par.V, par.O)
	if err != nil {
		return nil, nil, err
	}

	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, par.P1Bytes(), par.P2Bytes())
	if err != nil {
		return nil, nil, err
	}
	p1Mirrored, err := codec.DecodeP1OrP3Matrices(p1All, par.M, par.V)
	if err != nil {
		return nil, nil, err
	}
	p2, err := codec.DecodeDenseMatrices(p2All, par.M, par.V, par.O)
	if err != nil {
		return nil, nil, err
	}

	p3, err := computeP3(o, p1Mirrored, p2, par)
	if err != nil {
		return nil, nil, err
	}
	p3Bytes := codec.EncodeP1OrP3Matrices(p3)

	cpk := make(CompactPublicKey, 0, par.CompactPKBytes())
	cpk = append(cpk, seedPK...)
	cpk = append(cpk, p3Bytes...)
	return CompactSecretKey(seedSK), cpk, nil
}

// computeP3 builds P3_i = Upper(O^T*P1_i*O + O^T*P2_i) for every i,
// the choice that makes Sign's guaranteed equation and Verify's
// equation agree (see DESIGN.md, Open Question decision 4, for the
// derivation). o is the
// decoded oil matrix, p1Mirrored the mirrored-symmetric decode of the
// public P1 blocks (codec.DecodeP1OrP3Matrices): it is converted to
// its upper-only form before use, since the raw, single-count matrix
// is what the quadratic form O^T*P1_i*O must be built from.
func computeP3(o gf16.Matrix, p1Mirrored, p2 []gf16.Matrix, par params.Params) ([]gf16.Matrix, error) {
	oT := o.Transpose()
	out := make([]gf16.Matrix, par.M)
	for i := 0; i < par.M; i++ {
		p1Raw := p1Mirrored[i].UpperTriangularOnly()
		oTP1, err := oT.Mul(p1Raw)
		if err != nil {
			return nil, err
		}
		oTP1O, err := oTP1.Mul(o)
		if err != nil {
			return nil, err
		}
		oTP2, err := oT.Mul(p2[i])
		if err != nil {
			return nil, err
		}
		x, err := oTP1O.Add(oTP2)
		if err != nil {
			return nil, err
		}
		out[i] = foldQuadraticForm(x)
	}
	return out, nil
}

// foldQuadraticForm turns an arbitrary square matrix x into the
// canonical upper-triangular representative of the quadratic form
// v^T*x*v: the diagonal is kept as-is, and for r<c the stored entry
// becomes x[r][c]+x[c][r], folding whatever x carries below the
// diagonal into its single upper-triangular coefficient. Evaluating
// the result as an upper-only (non-mirrored) matrix reproduces
// v^T*x*v exactly.
func foldQuadraticForm(x gf16.Matrix) gf16.Matrix {
	size := x.Rows
	out := gf16.NewMatrix(size, size)
	for r := 0; r < size; r++ {
		out.Set(r, r, x.At(r, r))
		for c := r + 1; c < size; c++ {
			out.Set(r, c, gf16.Add(x.At(r, c), x.At(c, r)))
		}
	}
	return out
}

// expandSK turns a compact secret key into its decoded matrix
// material (spec §4.5 ExpandSK).
func expandSK(csk CompactSecretKey, par params.Params) (*expandedSecretKey, error) {
	if len(csk) != par.SKSeedBytes {
		return nil, mayoerr.New(mayoerr.InvalidKeyFormat, "compact secret key has wrong length")
	}
	seedPK, oBytes := kdf.DerivePKSeedAndO(csk, par.PKSeedBytes, par.OBytes())
	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, par.P1Bytes(), par.P2Bytes())
	if err != nil {
		return nil, err
	}

	o, err := codec.DecodeDenseMatrix(oBytes, par.V, par.O)
	if err != nil {
		return nil, err
	}
	p1Mirrored, err := codec.DecodeP1OrP3Matrices(p1All, par.M, par.V)
	if err != nil {
		return nil, err
	}
	p2, err := codec.DecodeDenseMatrices(p2All, par.M, par.V, par.O)
	if err != nil {
		return nil, err
	}

	// P1_i's quadratic term (s_V^T*P1_i*s_V, used both here for L and
	// in sign.go for y') needs the upper-only, single-count matrix:
	// mirroring already summed each off-diagonal pair once, so
	// (P1_i+P1_i^T) computed from the mirrored decode would cancel to
	// zero under GF16's characteristic-2 addition.
	p1Raw := make([]gf16.Matrix, par.M)
	lAll := make([]gf16.Matrix, par.M)
	for i := 0; i < par.M; i++ {
		raw := p1Mirrored[i].UpperTriangularOnly()
		p1Raw[i] = raw
		sym, err := raw.Add(raw.Transpose())
		if err != nil {
			return nil, err
		}
		lo, err := sym.Mul(o)
		if err != nil {
			return nil, err
		}
		li, err := lo.Add(p2[i])
		if err != nil {
			return nil, err
		}
		lAll[i] = li
	}

	esk := &expandedSecretKey{
		par:    par,
		seedSK: append([]byte(nil), csk...),
		oBytes: oBytes,
		p1All:  p1All,
		lAll:   codec.EncodeDenseMatrices(lAll),
		o:      o,
		p1:     p1Raw,
		l:      lAll,
	}
	return esk, nil
}

// ExpandSK serializes the decoded secret-key material back into the
// ExpandedSecretKey byte layout of spec §3/§6.
func ExpandSK(csk CompactSecretKey, par params.Params) ([]byte, error) {
	esk, err := expandSK(csk, par)
	if err != nil {
		return nil, err
	}
	defer esk.Destroy()
	out := make([]byte, 0, par.ExpandedSKBytes())
	out = append(out, esk.seedSK...)
	out = append(out, esk.oBytes...)
	out = append(out, esk.p1All...)
	out = append(out, esk.lAll...)
	return out, nil
}

// ExpandPK turns a compact public key into its ExpandedPublicKey byte
// layout (spec §4.5 ExpandPK).
func ExpandPK(cpk CompactPublicKey, par params.Params) ([]byte, error) {
	if len(cpk) != par.CompactPKBytes() {
		return nil, mayoerr.New(mayoerr.InvalidKeyFormat, "compact public key has wrong length")
	}
	seedPK := cpk[:par.PKSeedBytes]
	p3Bytes := cpk[par.PKSeedBytes:]

	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, par.P1Bytes(), par.P2Bytes())
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, par.ExpandedPKBytes())
	out = append(out, p1All...)
	out = append(out, p2All...)
	out = append(out, p3Bytes...)
	return out, nil
}

// expandPK decodes a CompactPublicKey straight into matrix form,
// bypassing the byte round-trip ExpandPK performs; used internally by
// Verify.
func expandPK(cpk CompactPublicKey, par params.Params) (*expandedPublicKey, error) {
	if len(cpk) != par.CompactPKBytes() {
		return nil, mayoerr.New(mayoerr.InvalidKeyFormat, "compact public key has wrong length")
	}
	seedPK := cpk[:par.PKSeedBytes]
	p3Bytes := cpk[par.PKSeedBytes:]

	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, par.P1Bytes(), par.P2Bytes())
	if err != nil {
		return nil, err
	}
	p1Mirrored, err := codec.DecodeP1OrP3Matrices(p1All, par.M, par.V)
	if err != nil {
		return nil, err
	}
	p2, err := codec.DecodeDenseMatrices(p2All, par.M, par.V, par.O)
	if err != nil {
		return nil, err
	}
	p3Mirrored, err := codec.DecodeP1OrP3Matrices(p3Bytes, par.M, par.O)
	if err != nil {
		return nil, err
	}
	return &expandedPublicKey{par: par, p1: upperOnlyAll(p1Mirrored), p2: p2, p3: upperOnlyAll(p3Mirrored)}, nil
}

// upperOnlyAll maps UpperTriangularOnly over a slice of square
// matrices, converting a mirrored-symmetric decode batch into the
// single-count form the quadratic terms in sign.go/verify.go need.
func upperOnlyAll(mats []gf16.Matrix) []gf16.Matrix {
	out := make([]gf16.Matrix, len(mats))
	for i, m := range mats {
		out[i] = m.UpperTriangularOnly()
	}
	return out
}

// decodeExpandedSK parses the ExpandedSecretKey byte layout produced
// by ExpandSK back into matrix form, for callers (e.g. Sign) that
// receive an already-expanded key rather than a compact one.
func decodeExpandedSK(esk []byte, par params.Params) (*expandedSecretKey, error) {
	if len(esk) != par.ExpandedSKBytes() {
		return nil, mayoerr.New(mayoerr.InvalidKeyFormat, "expanded secret key has wrong length")
	}
	off := 0
	seedSK := esk[off : off+par.SKSeedBytes]
	off += par.SKSeedBytes
	oBytes := esk[off : off+par.OBytes()]
	off += par.OBytes()
	p1All := esk[off : off+par.P1Bytes()]
	off += par.P1Bytes()
	lAll := esk[off : off+par.LBytes()]

	o, err := codec.DecodeDenseMatrix(oBytes, par.V, par.O)
	if err != nil {
		return nil, err
	}
	p1Mirrored, err := codec.DecodeP1OrP3Matrices(p1All, par.M, par.V)
	if err != nil {
		return nil, err
	}
	l, err := codec.DecodeDenseMatrices(lAll, par.M, par.V, par.O)
	if err != nil {
		return nil, err
	}

	return &expandedSecretKey{
		par:    par,
		seedSK: append([]byte(nil), seedSK...),
		oBytes: append([]byte(nil), oBytes...),
		p1All:  append([]byte(nil), p1All...),
		lAll:   append([]byte(nil), lAll...),
		o:      o,
		p1:     upperOnlyAll(p1Mirrored),
		l:      l,
	}, nil
}

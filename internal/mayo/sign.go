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

// MaxSignRetries bounds the salt+vinegar retry loop of Algorithm 8
// (spec §4.7 step 3, §5 "Cancellation").
const MaxSignRetries = 256

// Sign runs Algorithm 8 against a compact secret key, expanding it
// internally and destroying the expansion before returning.
func Sign(csk CompactSecretKey, message []byte, par params.Params) (Signature, error) {
	sig, _, err := SignWithAttempts(csk, message, par)
	return sig, err
}

// SignWithAttempts behaves like Sign but also reports how many trials
// of the retry loop (spec §4.7 step 3) it took to find a solvable
// linear system, for the retry-distribution tooling named in spec §9.
func SignWithAttempts(csk CompactSecretKey, message []byte, par params.Params) (Signature, int, error) {
	esk, err := expandSK(csk, par)
	if err != nil {
		return nil, 0, err
	}
	defer esk.Destroy()
	return signWithExpanded(esk, message, par, rand.Reader)
}

// SignExpanded runs Algorithm 8 against an already-expanded secret key
// (the ExpandSK byte layout), for callers that cache the expansion.
func SignExpanded(expandedSKBytes []byte, message []byte, par params.Params) (Signature, error) {
	esk, err := decodeExpandedSK(expandedSKBytes, par)
	if err != nil {
		return nil, err
	}
	defer esk.Destroy()
	sig, _, err := signWithExpanded(esk, message, par, rand.Reader)
	return sig, err
}

// SignDeterministic is the KAT-harness hook named in spec §1/§9: it
// takes an explicit randomness source in place of crypto/rand.Reader
// so a test driver can feed fixed salt/vinegar bytes and reproduce a
// known-answer signature bit-for-bit.
func SignDeterministic(csk CompactSecretKey, message []byte, par params.Params, rnd io.Reader) (Signature, error) {
	esk, err := expandSK(csk, par)
	if err != nil {
		return nil, err
	}
	defer esk.Destroy()
	sig, _, err := signWithExpanded(esk, message, par, rnd)
	return sig, err
}

func signWithExpanded(esk *expandedSecretKey, message []byte, par params.Params, rnd io.Reader) (Signature, int, error) {
	mDigest := kdf.DigestMessage(message, par.DigestBytes)

	for trial := 0; trial < MaxSignRetries; trial++ {
		salt := make([]byte, par.SaltBytes)
		if _, err := io.ReadFull(rnd, salt); err != nil {
			return nil, trial + 1, mayoerr.Wrap(mayoerr.KeygenRandomnessUnavailable, "sample salt", err)
		}
		tBytes := kdf.DeriveTargetT(mDigest, salt, par.TBytes())
		t, err := codec.DecodeVector(tBytes, par.M)
		if err != nil {
			return nil, trial + 1, err
		}

		sV, err := sampleVinegar(par.V, rnd)
		if err != nil {
			return nil, trial + 1, err
		}

		a := gf16.NewMatrix(par.M, par.O)
		yPrime := make(gf16.Vector, par.M)
		for i := 0; i < par.M; i++ {
			p1SV, err := esk.p1[i].MatVec(sV)
			if err != nil {
				return nil, trial + 1, err
			}
			yi, err := gf16.Dot(sV, p1SV)
			if err != nil {
				return nil, trial + 1, err
			}
			yPrime[i] = yi

			row, err := esk.l[i].VecMat(sV)
			if err != nil {
				return nil, trial + 1, err
			}
			for c := 0; c < par.O; c++ {
				a.Set(i, c, row[c])
			}
		}

		target, err := gf16.SubVec(t, yPrime)
		if err != nil {
			return nil, trial + 1, err
		}

		status, sol, err := gf16.Solve(a, target)
		if err != nil {
			return nil, trial + 1, err
		}
		if status != gf16.Solved {
			continue
		}

		// The transmitted vinegar block is emulsified with the oil
		// solution (s_V + O*sol), not the raw vinegar draw: O*sol is
		// exactly the term computeP3 cancels out of Verify's equation,
		// so without it Verify would reject a signature this same
		// esk produced.
		oSol, err := esk.o.MatVec(sol)
		if err != nil {
			return nil, trial + 1, err
		}
		sVFinal, err := gf16.AddVec(sV, oSol)
		if err != nil {
			return nil, trial + 1, err
		}

		s := make(gf16.Vector, 0, par.N)
		s = append(s, sVFinal...)
		s = append(s, sol...)
		sBytes := codec.EncodeSVector(s)

		sig := make(Signature, 0, par.SigBytes())
		sig = append(sig, sBytes...)
		sig = append(sig, salt...)
		return sig, trial + 1, nil
	}
	return nil, MaxSignRetries, mayoerr.New(mayoerr.SignRetriesExhausted, "exhausted retry budget without a solvable linear system")
}

// sampleVinegar draws v independent uniform F16 samples, each nibble
// of a fresh random byte masked to the low 4 bits (spec §4.7 step 3c).
func sampleVinegar(v int, rnd io.Reader) (gf16.Vector, error) {
	raw := make([]byte, v)
	if _, err := io.ReadFull(rnd, raw); err != nil {
		return nil, mayoerr.Wrap(mayoerr.KeygenRandomnessUnavailable, "sample vinegar", err)
	}
	out := make(gf16.Vector, v)
	for i, b := range raw {
		out[i] = gf16.Elem(b & 0x0f)
	}
	return out, nil
}

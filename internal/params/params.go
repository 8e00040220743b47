// Package params defines the fixed MAYO variant tables (§3 of the spec)
// and resolves a variant by case-insensitive name.
package params

import (
	"fmt"
	"strings"
)

// Params collects the sizes that every other component derives its
// buffer lengths from. A value is fully determined by its variant name;
// there is no dynamic dispatch, only table lookup (Design Note 1).
type Params struct {
	Name string

	N int // total variables
	O int // oil count
	V int // vinegar count, N-O
	M int // number of quadratic equations
	K int // solution multiplicity (reserved, unused by the core)

	SKSeedBytes int
	PKSeedBytes int
	SaltBytes   int
	DigestBytes int
}

// OBytes is ceil(V*O/2), the packed size of the O matrix.
func (p Params) OBytes() int { return ceilDiv(p.V*p.O, 2) }

// P1Bytes is the packed size of all M copies of the upper-triangular V×V P1 blocks.
func (p Params) P1Bytes() int { return p.M * ceilDiv(p.V*(p.V+1), 4) }

// P2Bytes is the packed size of all M copies of the dense V×O P2 blocks.
func (p Params) P2Bytes() int { return p.M * ceilDiv(p.V*p.O, 2) }

// P3Bytes is the packed size of all M copies of the upper-triangular O×O P3 blocks.
func (p Params) P3Bytes() int { return p.M * ceilDiv(p.O*(p.O+1), 4) }

// LBytes is the packed size of all M dense V×O L blocks (same shape as P2).
func (p Params) LBytes() int { return p.P2Bytes() }

// SigBytes is the full signature length, ceil(N/2)+SaltBytes.
func (p Params) SigBytes() int { return ceilDiv(p.N, 2) + p.SaltBytes }

// SBytes is the packed length of the full solution vector s (length N).
func (p Params) SBytes() int { return ceilDiv(p.N, 2) }

// TBytes is the packed length of the target vector t (length M).
func (p Params) TBytes() int { return ceilDiv(p.M, 2) }

// CompactPKBytes is the on-disk size of a compact public key.
func (p Params) CompactPKBytes() int { return p.PKSeedBytes + p.P3Bytes() }

// ExpandedSKBytes is the on-disk size of an expanded secret key.
func (p Params) ExpandedSKBytes() int {
	return p.SKSeedBytes + p.OBytes() + p.P1Bytes() + p.LBytes()
}

// ExpandedPKBytes is the on-disk size of an expanded public key.
func (p Params) ExpandedPKBytes() int { return p.P1Bytes() + p.P2Bytes() + p.P3Bytes() }

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// MAYO1 is the reference "fast" variant (n=66,m=64,o=8,k=9).
var MAYO1 = Params{
	Name: "MAYO1",
	N:    66, O: 8, V: 66 - 8, M: 64, K: 9,
	SKSeedBytes: 24, PKSeedBytes: 16, SaltBytes: 24, DigestBytes: 32,
}

// MAYO2 is the reference "balanced" variant (n=78,m=64,o=18,k=4).
var MAYO2 = Params{
	Name: "MAYO2",
	N:    78, O: 18, V: 78 - 18, M: 64, K: 4,
	SKSeedBytes: 24, PKSeedBytes: 16, SaltBytes: 24, DigestBytes: 32,
}

var table = map[string]Params{
	"mayo1": MAYO1,
	"mayo2": MAYO2,
}

// Lookup resolves a variant by case-insensitive name.
func Lookup(name string) (Params, error) {
	p, ok := table[strings.ToLower(name)]
	if !ok {
		return Params{}, fmt.Errorf("params: unknown variant %q", name)
	}
	return p, nil
}

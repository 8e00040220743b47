package gf16

import "testing"

func TestSymmetrizeDecodeInvariant(t *testing.T) {
	m := NewMatrix(3, 3)
	vals := []Elem{1, 2, 3, 0, 4, 5, 0, 0, 6}
	copy(m.Data, vals)
	sym, err := m.Symmetrize()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if sym.At(i, j) != sym.At(j, i) {
				t.Fatalf("not symmetric at %d,%d", i, j)
			}
		}
	}
}

func TestMatVecVecMatDimensionMismatch(t *testing.T) {
	m := NewMatrix(2, 3)
	if _, err := m.MatVec(Vector{1, 2}); err == nil {
		t.Fatal("expected dimension mismatch")
	}
	if _, err := m.VecMat(Vector{1, 2, 3}); err == nil {
		t.Fatal("expected dimension mismatch")
	}
}

func TestDotEmptyVectorsAreZero(t *testing.T) {
	d, err := Dot(Vector{}, Vector{})
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Fatalf("empty dot = %d, want 0", d)
	}
}

func TestMulAssociatesWithMatVec(t *testing.T) {
	a := NewMatrix(2, 2)
	copy(a.Data, []Elem{1, 2, 3, 4})
	b := NewMatrix(2, 2)
	copy(b.Data, []Elem{5, 6, 7, 8})
	v := Vector{9, 10}

	ab, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	lhs, err := ab.MatVec(v)
	if err != nil {
		t.Fatal(err)
	}

	bv, err := b.MatVec(v)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := a.MatVec(bv)
	if err != nil {
		t.Fatal(err)
	}
	for i := range lhs {
		if lhs[i] != rhs[i] {
			t.Fatalf("(AB)v != A(Bv) at %d: %v vs %v", i, lhs, rhs)
		}
	}
}

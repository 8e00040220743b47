package gf16

import "testing"

func TestMulSanity(t *testing.T) {
	if got := Mul(0x2, 0x7); got != 0xE {
		t.Fatalf("mul(2,7) = %#x, want 0xE", got)
	}
}

func TestInvOfTwo(t *testing.T) {
	inv, err := Inv(0x2)
	if err != nil {
		t.Fatalf("inv(2): %v", err)
	}
	if Mul(2, inv) != 1 {
		t.Fatalf("2*inv(2) = %#x, want 1", Mul(2, inv))
	}
}

func TestInvOfZero(t *testing.T) {
	if _, err := Inv(0); err == nil {
		t.Fatal("inv(0) should fail")
	}
}

func TestFieldAxioms(t *testing.T) {
	for a := Elem(0); a < 16; a++ {
		for b := Elem(0); b < 16; b++ {
			if Add(a, b) != Add(b, a) {
				t.Fatalf("add not commutative at %d,%d", a, b)
			}
			if Mul(a, b) != Mul(b, a) {
				t.Fatalf("mul not commutative at %d,%d", a, b)
			}
			for c := Elem(0); c < 16; c++ {
				if Add(Add(a, b), c) != Add(a, Add(b, c)) {
					t.Fatalf("add not associative at %d,%d,%d", a, b, c)
				}
			}
		}
		if Add(a, 0) != a {
			t.Fatalf("a+0 != a at %d", a)
		}
		if Mul(a, 1) != a {
			t.Fatalf("a*1 != a at %d", a)
		}
	}
}

func TestNonzeroPow15IsOne(t *testing.T) {
	for a := Elem(1); a < 16; a++ {
		if Pow(a, 15) != 1 {
			t.Fatalf("%d^15 != 1", a)
		}
	}
}

func TestPowZeroExponent(t *testing.T) {
	for a := Elem(0); a < 16; a++ {
		if Pow(a, 0) != 1 {
			t.Fatalf("%d^0 != 1", a)
		}
	}
}

package codec

import (
	"testing"

	"mayo-signature/internal/gf16"
)

func TestVectorRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 17, 64} {
		v := make(gf16.Vector, n)
		for i := range v {
			v[i] = gf16.Elem((i*7 + 3) % 16)
		}
		enc := EncodeVector(v)
		dec, err := DecodeVector(enc, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i := range v {
			if v[i] != dec[i] {
				t.Fatalf("n=%d: round trip mismatch at %d: %v vs %v", n, i, v, dec)
			}
		}
	}
}

func TestDecodeVectorInsufficientBytes(t *testing.T) {
	if _, err := DecodeVector([]byte{0x12}, 4); err == nil {
		t.Fatal("expected InsufficientBytes error")
	}
}

func TestOddLengthHighNibbleIsMasked(t *testing.T) {
	// A trailing byte with garbage in the high nibble must still decode
	// only the low nibble for an odd count.
	b := []byte{0xF3}
	v, err := DecodeVector(b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v[0] != 0x3 {
		t.Fatalf("v[0] = %#x, want 0x3", v[0])
	}
}

func TestUpperTriangularRoundTripAndSymmetry(t *testing.T) {
	size := 4
	n := size * (size + 1) / 2
	elems := make(gf16.Vector, n)
	for i := range elems {
		elems[i] = gf16.Elem((i + 1) % 16)
	}
	m, err := DecodeUpperTriangular(elems, size)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Fatalf("not symmetric at %d,%d", i, j)
			}
		}
	}
	back := EncodeUpperTriangular(m)
	for i := range elems {
		if elems[i] != back[i] {
			t.Fatalf("upper triangle round trip mismatch at %d", i)
		}
	}
}

func TestDenseMatricesRoundTrip(t *testing.T) {
	const count, rows, cols = 3, 5, 2
	mats := make([]gf16.Matrix, count)
	for i := range mats {
		m := gf16.NewMatrix(rows, cols)
		for j := range m.Data {
			m.Data[j] = gf16.Elem((i*3 + j) % 16)
		}
		mats[i] = m
	}
	packed := EncodeDenseMatrices(mats)
	back, err := DecodeDenseMatrices(packed, count, rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	for i := range mats {
		for j := range mats[i].Data {
			if mats[i].Data[j] != back[i].Data[j] {
				t.Fatalf("matrix %d element %d mismatch", i, j)
			}
		}
	}
}

func TestP1P3MatricesRoundTrip(t *testing.T) {
	const count, size = 2, 5
	mats := make([]gf16.Matrix, count)
	for i := range mats {
		m := gf16.NewMatrix(size, size)
		for r := 0; r < size; r++ {
			for c := r; c < size; c++ {
				v := gf16.Elem((r + c + i) % 16)
				m.Set(r, c, v)
				m.Set(c, r, v)
			}
		}
		mats[i] = m
	}
	packed := EncodeP1OrP3Matrices(mats)
	back, err := DecodeP1OrP3Matrices(packed, count, size)
	if err != nil {
		t.Fatal(err)
	}
	for i := range mats {
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if mats[i].At(r, c) != back[i].At(r, c) {
					t.Fatalf("matrix %d (%d,%d) mismatch", i, r, c)
				}
			}
		}
	}
}

func TestDecodeSVectorRequiresExactLength(t *testing.T) {
	n := 5
	b := make([]byte, ceilDiv(n, 2)+1)
	if _, err := DecodeSVector(b, n); err == nil {
		t.Fatal("expected length-mismatch error for oversized input")
	}
	if _, err := DecodeSVector(b[:ceilDiv(n, 2)], n); err != nil {
		t.Fatalf("exact length should decode: %v", err)
	}
}

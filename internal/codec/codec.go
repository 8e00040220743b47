// Package codec implements the bit-level layouts of spec §4.3/§6: two
// GF(16) nibbles per byte, and the triangular-matrix packing used for
// the symmetric P1/P3 blocks.
package codec

import (
	"mayo-signature/internal/gf16"
	"mayo-signature/internal/mayoerr"
)

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// EncodeVector packs v into ceil(len(v)/2) bytes: element 2k in the low
// nibble of byte k, element 2k+1 in the high nibble.
func EncodeVector(v gf16.Vector) []byte {
	out := make([]byte, ceilDiv(len(v), 2))
	for k, e := range v {
		if k%2 == 0 {
			out[k/2] |= byte(e) & 0x0f
		} else {
			out[k/2] |= (byte(e) & 0x0f) << 4
		}
	}
	return out
}

// DecodeVector unpacks count elements from b. It fails InsufficientBytes
// if b is shorter than ceil(count/2).
func DecodeVector(b []byte, count int) (gf16.Vector, error) {
	need := ceilDiv(count, 2)
	if len(b) < need {
		return nil, mayoerr.New(mayoerr.InsufficientBytes, "decode_gf: short input")
	}
	out := make(gf16.Vector, count)
	for k := 0; k < count; k++ {
		byt := b[k/2]
		if k%2 == 0 {
			out[k] = gf16.Elem(byt & 0x0f)
		} else {
			out[k] = gf16.Elem((byt >> 4) & 0x0f)
		}
	}
	return out, nil
}

// DecodeUpperTriangular reads size*(size+1)/2 elements from elements
// (already nibble-decoded) and fills a size x size matrix: for r =
// 0..size-1, c = r..size-1 one element is consumed and stored at
// [r,c], mirrored to [c,r] when r != c (spec §4.3).
func DecodeUpperTriangular(elements gf16.Vector, size int) (gf16.Matrix, error) {
	need := size * (size + 1) / 2
	if len(elements) < need {
		return gf16.Matrix{}, mayoerr.New(mayoerr.InsufficientBytes, "decode_upper_triangular: short input")
	}
	m := gf16.NewMatrix(size, size)
	idx := 0
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			e := elements[idx]
			idx++
			m.Set(r, c, e)
			if r != c {
				m.Set(c, r, e)
			}
		}
	}
	return m, nil
}

// EncodeUpperTriangular is the inverse of DecodeUpperTriangular: it
// reads only the upper triangle (r<=c) of m, row-major, ignoring
// whatever is mirrored into the lower triangle.
func EncodeUpperTriangular(m gf16.Matrix) gf16.Vector {
	size := m.Rows
	out := make(gf16.Vector, 0, size*(size+1)/2)
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			out = append(out, m.At(r, c))
		}
	}
	return out
}

// DecodeDenseMatrix decodes a row-major rows x cols matrix from
// nibble-packed bytes.
func DecodeDenseMatrix(b []byte, rows, cols int) (gf16.Matrix, error) {
	v, err := DecodeVector(b, rows*cols)
	if err != nil {
		return gf16.Matrix{}, err
	}
	m := gf16.NewMatrix(rows, cols)
	copy(m.Data, v)
	return m, nil
}

// EncodeDenseMatrix packs a dense matrix row-major.
func EncodeDenseMatrix(m gf16.Matrix) []byte {
	return EncodeVector(gf16.Vector(m.Data))
}

// DecodeP1OrP3Matrices splits bytes into m equal chunks of
// ceil(size*(size+1)/4) bytes each and decodes each as a size x size
// upper-triangular symmetric matrix (used for both P1, size=v, and
// P3, size=o).
func DecodeP1OrP3Matrices(b []byte, count, size int) ([]gf16.Matrix, error) {
	chunkElems := size * (size + 1) / 2
	chunkBytes := ceilDiv(chunkElems, 2)
	if len(b) < count*chunkBytes {
		return nil, mayoerr.New(mayoerr.InsufficientBytes, "decode_p1/p3: short input")
	}
	out := make([]gf16.Matrix, count)
	for i := 0; i < count; i++ {
		chunk := b[i*chunkBytes : (i+1)*chunkBytes]
		elems, err := DecodeVector(chunk, chunkElems)
		if err != nil {
			return nil, err
		}
		mat, err := DecodeUpperTriangular(elems, size)
		if err != nil {
			return nil, err
		}
		out[i] = mat
	}
	return out, nil
}

// EncodeP1OrP3Matrices is the inverse of DecodeP1OrP3Matrices.
func EncodeP1OrP3Matrices(mats []gf16.Matrix) []byte {
	var out []byte
	for _, m := range mats {
		out = append(out, EncodeVector(EncodeUpperTriangular(m))...)
	}
	return out
}

// DecodeDenseMatrices splits bytes into count equal chunks of
// ceil(rows*cols/2) bytes each and decodes each as a dense rows x cols
// matrix (used for both P2 and L).
func DecodeDenseMatrices(b []byte, count, rows, cols int) ([]gf16.Matrix, error) {
	chunkBytes := ceilDiv(rows*cols, 2)
	if len(b) < count*chunkBytes {
		return nil, mayoerr.New(mayoerr.InsufficientBytes, "decode_p2/l: short input")
	}
	out := make([]gf16.Matrix, count)
	for i := 0; i < count; i++ {
		chunk := b[i*chunkBytes : (i+1)*chunkBytes]
		mat, err := DecodeDenseMatrix(chunk, rows, cols)
		if err != nil {
			return nil, err
		}
		out[i] = mat
	}
	return out, nil
}

// EncodeDenseMatrices is the inverse of DecodeDenseMatrices.
func EncodeDenseMatrices(mats []gf16.Matrix) []byte {
	var out []byte
	for _, m := range mats {
		out = append(out, EncodeDenseMatrix(m)...)
	}
	return out
}

// EncodeSVector packs the length-n solution vector s.
func EncodeSVector(s gf16.Vector) []byte { return EncodeVector(s) }

// DecodeSVector decodes s, failing unless b is exactly ceil(n/2) bytes
// (stricter than DecodeVector, per spec §4.3's decode_s_vector).
func DecodeSVector(b []byte, n int) (gf16.Vector, error) {
	if len(b) != ceilDiv(n, 2) {
		return nil, mayoerr.New(mayoerr.InsufficientBytes, "decode_s_vector: length mismatch")
	}
	return DecodeVector(b, n)
}

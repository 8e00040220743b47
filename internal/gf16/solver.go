package gf16

// SolveStatus is the three-way outcome of Solve, per Design Note 4:
// a solver never "throws", it returns one of these tagged results.
type SolveStatus int

const (
	// Solved means X holds the unique solution.
	Solved SolveStatus = iota
	// NoSolution means the system is inconsistent.
	NoSolution
	// NotUnique means the system is consistent but under-determined.
	NotUnique
)

// Solve runs Gauss-Jordan elimination with column pivoting over F16 on
// A*x=y (spec §4.6, algorithm in §4.6 steps 1-5). A has shape m x o, y
// has length m; on Solved, X has length o.
func Solve(a Matrix, y Vector) (status SolveStatus, x Vector, err error) {
	m, o := a.Rows, a.Cols
	if len(y) != m {
		return 0, nil, dimErr("solve: len(y) != A.rows")
	}

	// Edge cases named explicitly in spec §4.6.
	if m == 0 && o == 0 {
		return Solved, Vector{}, nil
	}
	if m == 0 && o > 0 {
		return NotUnique, nil, nil
	}
	if o == 0 {
		for _, yi := range y {
			if yi != 0 {
				return NoSolution, nil, nil
			}
		}
		return Solved, Vector{}, nil
	}

	// Augmented matrix M = [A | y].
	aug := NewMatrix(m, o+1)
	for r := 0; r < m; r++ {
		for c := 0; c < o; c++ {
			aug.Set(r, c, a.At(r, c))
		}
		aug.Set(r, o, y[r])
	}

	pr, pc := 0, 0
	for pr < m && pc < o {
		pivotRow := -1
		for r := pr; r < m; r++ {
			if aug.At(r, pc) != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			pc++
			continue
		}
		swapRows(aug, pr, pivotRow)

		invPivot := MustInv(aug.At(pr, pc))
		for c := 0; c <= o; c++ {
			aug.Set(pr, c, Mul(invPivot, aug.At(pr, c)))
		}
		for q := 0; q < m; q++ {
			if q == pr {
				continue
			}
			f := aug.At(q, pc)
			if f == 0 {
				continue
			}
			for c := 0; c <= o; c++ {
				aug.Set(q, c, Add(aug.At(q, c), Mul(f, aug.At(pr, c))))
			}
		}
		pr++
		pc++
	}

	// Consistency: a row with all leading entries zero but a nonzero
	// augmented column means the system has no solution.
	rank := 0
	for r := 0; r < m; r++ {
		allZero := true
		for c := 0; c < o; c++ {
			if aug.At(r, c) != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			if aug.At(r, o) != 0 {
				return NoSolution, nil, nil
			}
			continue
		}
		rank++
	}
	if rank < o {
		return NotUnique, nil, nil
	}

	// Every row 0..o-1 is now in reduced row-echelon form with pivot at
	// column r (rank == o guarantees this), so the solution can be read
	// straight off the augmented column without further substitution.
	out := make(Vector, o)
	for r := 0; r < o; r++ {
		out[r] = aug.At(r, o)
	}
	return Solved, out, nil
}

func swapRows(m Matrix, r1, r2 int) {
	if r1 == r2 {
		return
	}
	cols := m.Cols
	for c := 0; c < cols; c++ {
		i1, i2 := r1*cols+c, r2*cols+c
		m.Data[i1], m.Data[i2] = m.Data[i2], m.Data[i1]
	}
}

package gf16

import "testing"

func TestSolveUniqueSolution(t *testing.T) {
	a := NewMatrix(2, 2)
	copy(a.Data, []Elem{1, 1, 1, 2})
	y := Vector{3, 5}
	status, x, err := Solve(a, y)
	if err != nil {
		t.Fatal(err)
	}
	if status != Solved {
		t.Fatalf("status = %v, want Solved", status)
	}
	want := Vector{1, 2}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x = %v, want %v", x, want)
		}
	}
	got, err := a.MatVec(x)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != y[i] {
			t.Fatalf("A*x = %v, want %v", got, y)
		}
	}
}

func TestSolveNoSolution(t *testing.T) {
	a := NewMatrix(2, 2)
	copy(a.Data, []Elem{1, 1, 1, 1})
	status, _, err := Solve(a, Vector{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if status != NoSolution {
		t.Fatalf("status = %v, want NoSolution", status)
	}
}

func TestSolveEdgeCases(t *testing.T) {
	if status, x, err := Solve(NewMatrix(0, 0), Vector{}); err != nil || status != Solved || len(x) != 0 {
		t.Fatalf("m=0,o=0: status=%v x=%v err=%v", status, x, err)
	}
	if status, _, err := Solve(NewMatrix(0, 2), Vector{}); err != nil || status != NotUnique {
		t.Fatalf("m=0,o>0: status=%v err=%v", status, err)
	}
	if status, x, err := Solve(NewMatrix(2, 0), Vector{0, 0}); err != nil || status != Solved || len(x) != 0 {
		t.Fatalf("m>0,o=0,y=0: status=%v x=%v err=%v", status, x, err)
	}
	if status, _, err := Solve(NewMatrix(2, 0), Vector{1, 0}); err != nil || status != NoSolution {
		t.Fatalf("m>0,o=0,y!=0: status=%v err=%v", status, err)
	}
}

func TestSolveNotUniqueHasAlternateSolution(t *testing.T) {
	// A rank-deficient but consistent system: both rows identical, y consistent.
	a := NewMatrix(2, 2)
	copy(a.Data, []Elem{1, 1, 1, 1})
	status, _, err := Solve(a, Vector{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if status != NotUnique {
		t.Fatalf("status = %v, want NotUnique", status)
	}
	// x=(1,3) and x=(0,2) both satisfy A*x = (2,2) (1 XOR 3 = 2).
	for _, cand := range []Vector{{1, 3}, {0, 2}} {
		got, err := a.MatVec(cand)
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != 2 || got[1] != 2 {
			t.Fatalf("candidate %v does not solve system: got %v", cand, got)
		}
	}
}

func TestSolveDimensionMismatch(t *testing.T) {
	a := NewMatrix(2, 2)
	if _, _, err := Solve(a, Vector{1, 2, 3}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

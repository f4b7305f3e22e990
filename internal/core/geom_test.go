package core

import (
	"math"
	"testing"
)

func TestVectorPlus(t *testing.T) {
	got := NewVector(1, 2).Plus(NewVector(3, -5))
	if got != NewVector(4, -3) {
		t.Errorf("Plus() = %v, expected (4, -3)", got)
	}
}

func TestVectorTimes(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		k        float64
		expected Vector
	}{
		{"scale up", NewVector(1, 2), 3, NewVector(3, 6)},
		{"reverse", NewVector(2, -1), -1, NewVector(-2, 1)},
		{"zero", NewVector(5, 5), 0, Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Times(tc.k); got != tc.expected {
				t.Errorf("Times(%g) = %v, expected %v", tc.k, got, tc.expected)
			}
		})
	}
}

func TestVectorImmutable(t *testing.T) {
	a := NewVector(1, 1)
	_ = a.Plus(NewVector(2, 2))
	_ = a.Times(10)
	if a != NewVector(1, 1) {
		t.Errorf("receiver changed to %v", a)
	}
}

func TestVectorAlgebra(t *testing.T) {
	// Integer-valued components keep float addition exact.
	vs := []Vector{
		NewVector(0, 0),
		NewVector(1, -2),
		NewVector(-7, 3),
		NewVector(100, 0.5),
	}

	for _, a := range vs {
		for _, b := range vs {
			if a.Plus(b) != b.Plus(a) {
				t.Errorf("Plus not commutative for %v, %v", a, b)
			}
			for _, c := range vs {
				if a.Plus(b).Plus(c) != a.Plus(b.Plus(c)) {
					t.Errorf("Plus not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestVectorIsFinite(t *testing.T) {
	if !NewVector(1, 2).IsFinite() {
		t.Error("(1, 2) should be finite")
	}
	if NewVector(math.NaN(), 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVector(0, math.Inf(-1)).IsFinite() {
		t.Error("-Inf component should not be finite")
	}
}

func TestBoxIntersects(t *testing.T) {
	box := func(x, y, w, h float64) Box {
		return NewBox(NewVector(x, y), NewVector(w, h))
	}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        box(0, 0, 1, 1),
			b:        box(0.5, 0.5, 1, 1),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        box(0, 0, 1, 1),
			b:        box(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        box(0, 0, 1, 1),
			b:        box(0, 3, 1, 1),
			expected: false,
		},
		{
			name:     "touching right edge (no overlap)",
			a:        box(0, 0, 1, 1),
			b:        box(1, 0, 1, 1),
			expected: false,
		},
		{
			name:     "touching bottom edge (no overlap)",
			a:        box(0, 0, 1, 1),
			b:        box(0, 1, 1, 1),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        box(0, 0, 1, 1),
			b:        box(1, 1, 1, 1),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0, 4, 4),
			b:        box(1, 1, 0.5, 0.5),
			expected: true,
		},
		{
			name:     "identical boxes",
			a:        box(3, 3, 1, 1),
			b:        box(3, 3, 1, 1),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        box(0, 0, 1, 1),
			b:        box(0.99, 0.99, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(NewVector(5, 10), NewVector(0.5, 1.5))

	if b.Left() != 5 || b.Top() != 10 {
		t.Errorf("Left/Top = (%g, %g), expected (5, 10)", b.Left(), b.Top())
	}
	if b.Right() != 5.5 {
		t.Errorf("Right() = %g, expected 5.5", b.Right())
	}
	if b.Bottom() != 11.5 {
		t.Errorf("Bottom() = %g, expected 11.5", b.Bottom())
	}
}

func TestBoxCells(t *testing.T) {
	tests := []struct {
		name           string
		b              Box
		x0, x1, y0, y1 int
	}{
		{"aligned tile", NewBox(NewVector(2, 3), NewVector(1, 1)), 2, 3, 3, 4},
		{"straddling", NewBox(NewVector(1.5, 0.5), NewVector(1, 1)), 1, 3, 0, 2},
		{"small inside", NewBox(NewVector(0.2, 0.1), NewVector(0.6, 0.6)), 0, 1, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, x1, y0, y1 := tc.b.Cells()
			if x0 != tc.x0 || x1 != tc.x1 || y0 != tc.y0 || y1 != tc.y1 {
				t.Errorf("Cells() = [%d,%d)x[%d,%d), expected [%d,%d)x[%d,%d)",
					x0, x1, y0, y1, tc.x0, tc.x1, tc.y0, tc.y1)
			}
		})
	}
}

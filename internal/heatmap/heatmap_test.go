package heatmap

import (
	"math"
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestRowsAt(t *testing.T) {
	tbl := Rows{{1, 2}, {}, {3}}

	tests := []struct {
		name      string
		row, col  int
		wantV     float64
		wantState Lookup
	}{
		{"present", 0, 1, 2, Found},
		{"empty row", 1, 0, 0, OutOfBounds},
		{"short row", 2, 1, 0, OutOfBounds},
		{"row past end", 3, 0, 0, OutOfBounds},
		{"negative row", -1, 0, 0, OutOfBounds},
		{"negative col", 0, -1, 0, OutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, state := tbl.At(tt.row, tt.col)
			if v != tt.wantV || state != tt.wantState {
				t.Errorf("At(%d,%d) = (%v, %v), want (%v, %v)", tt.row, tt.col, v, state, tt.wantV, tt.wantState)
			}
		})
	}
}

func TestSparseRowsAt(t *testing.T) {
	tbl := SparseRows{{f(1), nil}, nil, {f(0)}}

	tests := []struct {
		name      string
		row, col  int
		wantV     float64
		wantState Lookup
	}{
		{"present", 0, 0, 1, Found},
		{"nil entry", 0, 1, 0, Missing},
		{"nil row", 1, 0, 0, Missing},
		{"explicit zero", 2, 0, 0, Found},
		{"short row", 2, 5, 0, OutOfBounds},
		{"row past end", 9, 0, 0, OutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, state := tbl.At(tt.row, tt.col)
			if v != tt.wantV || state != tt.wantState {
				t.Errorf("At(%d,%d) = (%v, %v), want (%v, %v)", tt.row, tt.col, v, state, tt.wantV, tt.wantState)
			}
		})
	}
}

func TestResolveNilTable(t *testing.T) {
	if got := Resolve(nil, 0, 0); got != 0 {
		t.Errorf("Resolve(nil) = %v, want 0", got)
	}
	var rows Rows
	if got := Resolve(rows, 3, 3); got != 0 {
		t.Errorf("Resolve(nil Rows) = %v, want 0", got)
	}
}

func TestRenderScenario(t *testing.T) {
	g := Render([]string{"a", "b"}, []string{"x", "y"}, Rows{{1}})

	want := [][]float64{
		{1, 0},
		{0, 0},
	}
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	for r := range want {
		for c := range want[r] {
			if got := g.At(r, c); got != want[r][c] {
				t.Errorf("cell (%s,%s) = %v, want %v", g.Rows()[r], g.Columns()[c], got, want[r][c])
			}
		}
	}
}

func TestRenderShapeAlwaysMatchesLabels(t *testing.T) {
	tables := map[string]Table{
		"nil":       nil,
		"empty":     Rows{},
		"ragged":    Rows{{1, 2, 3}, {4}},
		"oversized": Rows{{1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5}},
		"sparse":    SparseRows{nil, {nil, f(2)}},
	}
	labels := [][]string{nil, {"a"}, {"a", "b", "c"}}

	for name, tbl := range tables {
		for _, rows := range labels {
			for _, cols := range labels {
				g := Render(rows, cols, tbl)
				if g.Len() != len(rows)*len(cols) {
					t.Errorf("%s: %dx%d grid has %d cells", name, len(rows), len(cols), g.Len())
				}
				cells := g.Cells()
				if len(cells) != len(rows) {
					t.Errorf("%s: %d cell rows, want %d", name, len(cells), len(rows))
				}
				for r := range cells {
					if len(cells[r]) != len(cols) {
						t.Errorf("%s: row %d has %d cells, want %d", name, r, len(cells[r]), len(cols))
					}
					for c := range cells[r] {
						state := OutOfBounds
						if tbl != nil {
							_, state = tbl.At(r, c)
						}
						if state != Found && cells[r][c] != 0 {
							t.Errorf("%s: unsupplied cell (%d,%d) = %v, want 0", name, r, c, cells[r][c])
						}
					}
				}
			}
		}
	}
}

func TestRenderSparse(t *testing.T) {
	g := Render([]string{"r0", "r1", "r2"}, []string{"c0", "c1"}, SparseRows{
		{f(0.25), nil},
		nil,
		{f(0), f(0.75)},
	})

	want := [][]float64{
		{0.25, 0},
		{0, 0},
		{0, 0.75},
	}
	for r := range want {
		for c := range want[r] {
			if got := g.At(r, c); got != want[r][c] {
				t.Errorf("At(%d,%d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestRenderCopiesInputs(t *testing.T) {
	rows := []string{"a"}
	cols := []string{"x"}
	tbl := Rows{{1}}
	g := Render(rows, cols, tbl)

	rows[0] = "changed"
	tbl[0][0] = 9
	if g.Rows()[0] != "a" {
		t.Error("grid should not alias row labels")
	}
	if g.At(0, 0) != 1 {
		t.Error("grid should not alias the table")
	}

	cells := g.Cells()
	cells[0][0] = 5
	if g.At(0, 0) != 1 {
		t.Error("Cells() should return a copy")
	}
}

func TestAtOutsideGrid(t *testing.T) {
	g := Render([]string{"a"}, []string{"x"}, Rows{{3}})
	if g.At(1, 0) != 0 || g.At(0, 1) != 0 || g.At(-1, -1) != 0 {
		t.Error("At outside the grid should return 0")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0, "0"},
		{0.5, "0.5"},
		{0.125, "0.125"},
		{-2, "-2"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	if shade(math.NaN()) != shades[0] || shade(-1) != shades[0] || shade(0) != shades[0] {
		t.Error("cold values should use the first shade")
	}
	if shade(1) != shades[len(shades)-1] || shade(7) != shades[len(shades)-1] {
		t.Error("hot values should use the last shade")
	}
}

func TestViewIncludesLabelsAndValues(t *testing.T) {
	g := Render([]string{"alpha", "beta"}, []string{"x", "y"}, Rows{{1, 0.5}})
	out := g.View()

	for _, want := range []string{"alpha", "beta", "x", "y", "1", "0.5", "0"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestViewEmptyGrid(t *testing.T) {
	// Must not panic with no labels.
	_ = Render(nil, nil, nil).View()
}

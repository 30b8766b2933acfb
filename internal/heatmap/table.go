// Package heatmap projects a ragged or sparse score table onto a fixed
// row/column label grid.
//
// Lookups are total. A table may be shorter than the labels in either
// dimension or have holes anywhere; every such cell resolves to 0.
package heatmap

// Lookup classifies the outcome of reading one table position.
type Lookup int

const (
	// Found means the table holds a value at the position.
	Found Lookup = iota
	// OutOfBounds means the row or column lies beyond the table's extent.
	OutOfBounds
	// Missing means the position is inside the table but explicitly empty.
	Missing
)

func (l Lookup) String() string {
	switch l {
	case Found:
		return "found"
	case OutOfBounds:
		return "out-of-bounds"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// Table is a read-only 2-D value source keyed by (row, column) index.
type Table interface {
	At(row, col int) (float64, Lookup)
}

// Rows is a ragged dense table: rows may differ in length, but every
// position inside a row holds a value.
type Rows [][]float64

// At implements Table.
func (t Rows) At(row, col int) (float64, Lookup) {
	if row < 0 || row >= len(t) {
		return 0, OutOfBounds
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return 0, OutOfBounds
	}
	return r[col], Found
}

// SparseRows is a ragged table with holes. A nil row or a nil entry is
// Missing.
type SparseRows [][]*float64

// At implements Table.
func (t SparseRows) At(row, col int) (float64, Lookup) {
	if row < 0 || row >= len(t) {
		return 0, OutOfBounds
	}
	r := t[row]
	if r == nil {
		return 0, Missing
	}
	if col < 0 || col >= len(r) {
		return 0, OutOfBounds
	}
	if r[col] == nil {
		return 0, Missing
	}
	return *r[col], Found
}

// Resolve reads (row, col) from t and collapses anything but Found to 0.
// This is the only place the default-fill rule lives. A nil t is empty.
func Resolve(t Table, row, col int) float64 {
	if t == nil {
		return 0
	}
	v, state := t.At(row, col)
	if state != Found {
		return 0
	}
	return v
}

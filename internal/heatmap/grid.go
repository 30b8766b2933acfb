package heatmap

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Grid is a fully resolved heatmap: one value per (row label, column label).
// Built by Render and not modified afterwards.
type Grid struct {
	rows    []string
	columns []string
	cells   [][]float64
}

// Render resolves t over every (row, column) label pair. The result always
// has len(rows) × len(columns) cells; positions t does not supply are 0.
func Render(rows, columns []string, t Table) Grid {
	g := Grid{
		rows:    append([]string(nil), rows...),
		columns: append([]string(nil), columns...),
		cells:   make([][]float64, len(rows)),
	}
	for r := range rows {
		line := make([]float64, len(columns))
		for c := range columns {
			line[c] = Resolve(t, r, c)
		}
		g.cells[r] = line
	}
	return g
}

// Rows returns the row labels (the header column).
func (g Grid) Rows() []string {
	return append([]string(nil), g.rows...)
}

// Columns returns the column labels (the header row).
func (g Grid) Columns() []string {
	return append([]string(nil), g.columns...)
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.rows) * len(g.columns)
}

// At returns the resolved value at (row, col). Indices outside the grid
// return 0, matching the fill rule.
func (g Grid) At(row, col int) float64 {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return 0
	}
	return g.cells[row][col]
}

// Cells returns a copy of the resolved values, row-major.
func (g Grid) Cells() [][]float64 {
	out := make([][]float64, len(g.cells))
	for i, line := range g.cells {
		out[i] = append([]float64(nil), line...)
	}
	return out
}

// FormatValue renders a cell value in its shortest round-trip form
// ("1", "0.5", "NaN").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Background shades from cold to hot, indexed by intensity.
	shades = []lipgloss.Color{"236", "24", "31", "37", "172", "166", "160"}
)

// shade picks a background for v, treating [0, 1] as the color range.
// Values outside it saturate; NaN gets the coldest shade.
func shade(v float64) lipgloss.Color {
	if math.IsNaN(v) || v <= 0 {
		return shades[0]
	}
	if v >= 1 {
		return shades[len(shades)-1]
	}
	return shades[int(v*float64(len(shades)-1)+0.5)]
}

// View renders the grid as a bordered table with the column labels as the
// header row and the row labels as the first column.
func (g Grid) View() string {
	headers := make([]string, 0, len(g.columns)+1)
	headers = append(headers, "")
	headers = append(headers, g.columns...)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)

	for r, label := range g.rows {
		row := make([]string, 0, len(g.columns)+1)
		row = append(row, label)
		for c := range g.columns {
			row = append(row, FormatValue(g.cells[r][c]))
		}
		t.Row(row...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 0:
			return labelStyle
		default:
			return cellStyle.Background(shade(g.At(row, col-1)))
		}
	})

	return t.Render()
}

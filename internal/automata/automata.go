// Package automata shapes state-machine nodes and transitions into ordered
// display lines.
//
// Edges refer to nodes by ID only. Endpoints are not resolved, so an edge
// whose endpoints are not among the nodes is shown as given. No traversal or
// probability normalization happens here.
package automata

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Node is one state. A nil Weight means unweighted, which is not the same
// as a weight of 0.
type Node struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Weight *float64 `json:"weight,omitempty"`
}

// Edge is a directed transition between node IDs. Probability is passed
// through as given, without clamping.
type Edge struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Probability *float64 `json:"probability,omitempty"`
}

// Float returns a pointer to v, for setting optional decorations.
func Float(v float64) *float64 {
	return &v
}

// Display is the shaped graph: one line per node and per edge, in input order.
type Display struct {
	Nodes []string
	Edges []string
}

// Shape projects nodes and edges into display lines. Empty inputs give
// empty, non-nil lists.
func Shape(nodes []Node, edges []Edge) Display {
	d := Display{
		Nodes: make([]string, 0, len(nodes)),
		Edges: make([]string, 0, len(edges)),
	}
	for _, n := range nodes {
		d.Nodes = append(d.Nodes, NodeLine(n))
	}
	for _, e := range edges {
		d.Edges = append(d.Edges, EdgeLine(e))
	}
	return d
}

// NodeLine renders "Label" or "Label (w)" when a weight is present.
func NodeLine(n Node) string {
	return n.Label + suffix(n.Weight)
}

// EdgeLine renders "from → to" or "from → to (p)" when a probability is present.
func EdgeLine(e Edge) string {
	return e.From + " → " + e.To + suffix(e.Probability)
}

func suffix(v *float64) string {
	if v == nil {
		return ""
	}
	return " (" + strconv.FormatFloat(*v, 'f', -1, 64) + ")"
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			PaddingLeft(2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			PaddingLeft(2)
)

// View renders both lists under a "State Machine" title.
func (d Display) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("State Machine"))
	b.WriteString("\n")
	writeList(&b, "States", d.Nodes)
	b.WriteString("\n")
	writeList(&b, "Transitions", d.Edges)
	return b.String()
}

func writeList(b *strings.Builder, heading string, lines []string) {
	b.WriteString(sectionStyle.Render(heading))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString(emptyStyle.Render("(none)"))
		b.WriteString("\n")
		return
	}
	for _, line := range lines {
		b.WriteString(itemStyle.Render("• " + line))
		b.WriteString("\n")
	}
}

// Package confidence turns a raw confidence score into a bounded display value.
//
// Upstream scores are nominally in [0, 1] but may arrive out of range or
// non-finite. Everything here is total: there is no error path.
package confidence

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// DefaultLabel is used when a badge is built without a label.
const DefaultLabel = "Confidence"

// Band thresholds used only for coloring.
const (
	mediumFrom = 0.4
	highFrom   = 0.7
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
)

// Normalize clamps v to [0, 1]. NaN and ±Inf become 0.
func Normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// FormatPercent renders a normalized value as a whole percentage, e.g. "50%".
// Rounds half away from zero, so 0.125 is "13%".
func FormatPercent(v float64) string {
	return strconv.Itoa(int(math.Round(Normalize(v)*100))) + "%"
}

// Badge is a labeled, normalized confidence value ready for display.
type Badge struct {
	Label   string
	Value   float64 // always within [0, 1]
	Percent string
}

// New builds a Badge from any float64. An empty label means DefaultLabel.
func New(value float64, label string) Badge {
	if label == "" {
		label = DefaultLabel
	}
	v := Normalize(value)
	return Badge{
		Label:   label,
		Value:   v,
		Percent: FormatPercent(v),
	}
}

// Meets reports whether the badge reaches threshold. The threshold is
// normalized the same way as the value.
func (b Badge) Meets(threshold float64) bool {
	return b.Value >= Normalize(threshold)
}

// String returns the plain "Label: NN%" form.
func (b Badge) String() string {
	return b.Label + ": " + b.Percent
}

// View renders the badge with the percentage colored by band.
func (b Badge) View() string {
	style := lowStyle
	switch {
	case b.Value >= highFrom:
		style = highStyle
	case b.Value >= mediumFrom:
		style = mediumStyle
	}
	return labelStyle.Render(b.Label+":") + " " + style.Render(b.Percent)
}

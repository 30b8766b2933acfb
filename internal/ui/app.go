package ui

import (
	"strings"

	"github.com/abelbrown/atlas/internal/report"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Panel identifies one view of a report.
type Panel int

const (
	PanelOverview Panel = iota
	PanelTransitions
	PanelPatterns
	PanelStateMachine
	panelCount
)

var panelNames = [...]string{"Overview", "Transitions", "Patterns", "State Machine"}

func (p Panel) String() string {
	if p < 0 || p >= panelCount {
		return "Unknown"
	}
	return panelNames[p]
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold the client. It receives reports via messages.
type App struct {
	analysisID  string
	fetchReport func(id string) tea.Cmd

	view      report.View
	loaded    bool
	replied   bool // at least one ReportLoaded arrived
	threshold *float64

	panel   Panel
	spinner spinner.Model
	err     error
	width   int
	height  int
	ready   bool
	loading bool
}

// NewApp creates an App for one analysis.
// fetchReport returns a Cmd that fetches the report and answers with
// ReportLoaded.
func NewApp(analysisID string, fetchReport func(id string) tea.Cmd) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return App{
		analysisID:  analysisID,
		fetchReport: fetchReport,
		spinner:     s,
	}
}

// WithThreshold marks reports whose confidence falls below t.
func (a App) WithThreshold(t float64) App {
	a.threshold = &t
	return a
}

// Init starts the first fetch.
func (a App) Init() tea.Cmd {
	if a.fetchReport == nil {
		return nil
	}
	return tea.Batch(a.spinner.Tick, a.fetchReport(a.analysisID))
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case ReportLoaded:
		// Stale reply for a different analysis
		if msg.ID != a.analysisID {
			return a, nil
		}
		a.loading = false
		a.replied = true
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.view = report.Extract(msg.Payload)
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any existing error on key press
	if a.err != nil {
		a.err = nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab", "l", "right":
		a.panel = (a.panel + 1) % panelCount
		return a, nil

	case "shift+tab", "h", "left":
		a.panel = (a.panel + panelCount - 1) % panelCount
		return a, nil

	case "1", "2", "3", "4":
		a.panel = Panel(msg.String()[0] - '1')
		return a, nil

	case "r":
		if a.fetchReport != nil {
			a.loading = true
			return a, tea.Batch(a.spinner.Tick, a.fetchReport(a.analysisID))
		}
		return a, nil
	}

	return a, nil
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(Title.Render("Analysis " + a.analysisID))
	b.WriteString("\n")
	b.WriteString(renderTabs(a.panel))
	b.WriteString("\n")

	switch {
	case a.loaded:
		b.WriteString(Body.Render(RenderPanel(a.view, a.panel, a.threshold)))
	case a.loading || !a.replied:
		b.WriteString(HelpStyle.Render(a.spinner.View() + " Fetching report..."))
	default:
		b.WriteString(HelpStyle.Render("No report loaded. Press r to retry."))
	}
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + a.err.Error() + " (press any key to dismiss)"))
		b.WriteString("\n")
	}

	b.WriteString(RenderStatusBar(a.width, a.loading))
	return b.String()
}

// Panel returns the active panel (for testing).
func (a App) Panel() Panel {
	return a.panel
}

// Report returns the extracted report and whether one has loaded.
func (a App) Report() (report.View, bool) {
	return a.view, a.loaded
}

// Err returns the current error, if any.
func (a App) Err() error {
	return a.err
}

func renderTabs(active Panel) string {
	tabs := make([]string, 0, panelCount)
	for p := Panel(0); p < panelCount; p++ {
		if p == active {
			tabs = append(tabs, TabActive.Render(p.String()))
		} else {
			tabs = append(tabs, TabInactive.Render(p.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderPanel renders one panel of a report. A non-nil threshold adds a
// notice when the confidence falls below it.
func RenderPanel(v report.View, p Panel, threshold *float64) string {
	switch p {
	case PanelTransitions:
		if v.Transitions.Len() == 0 {
			return HelpStyle.Render("No transitions.")
		}
		return v.Transitions.View()

	case PanelPatterns:
		if v.Patterns.Len() == 0 {
			return HelpStyle.Render("No patterns.")
		}
		return v.Patterns.View()

	case PanelStateMachine:
		return v.Graph().View()
	}

	var b strings.Builder
	if v.SubjectID != "" {
		b.WriteString("Subject: " + v.SubjectID + "\n")
	}
	b.WriteString(v.Confidence.View())
	b.WriteString("\n")
	if threshold != nil && !v.Confidence.Meets(*threshold) {
		b.WriteString(Warning.Render("Below confidence threshold"))
		b.WriteString("\n")
	}
	if v.Notes != "" {
		b.WriteString(Note.Render(v.Notes))
		b.WriteString("\n")
	}
	if v.Summary != "" {
		b.WriteString("\n")
		b.WriteString(v.Summary)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatusBar renders the bottom status bar with key hints.
func RenderStatusBar(width int, loading bool) string {
	position := " Ready "
	if loading {
		position = " Loading... "
	}

	keys := []string{
		StatusBarKey.Render("tab") + StatusBarText.Render(":panel"),
		StatusBarKey.Render("1-4") + StatusBarText.Render(":jump"),
		StatusBarKey.Render("r") + StatusBarText.Render(":refresh"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	keyHints := strings.Join(keys, " ")

	// Calculate padding to fill width
	padding := width - lipgloss.Width(position) - lipgloss.Width(keyHints)
	if padding < 0 {
		padding = 0
	}

	bar := position + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}

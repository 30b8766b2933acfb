// Package report pulls render inputs out of an analysis report.
//
// The report's shape belongs to the analysis service, so extraction never
// fails: fields that are missing or of the wrong type are treated as absent
// and left to the renderers' fill rules.
package report

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/abelbrown/atlas/internal/automata"
	"github.com/abelbrown/atlas/internal/client"
	"github.com/abelbrown/atlas/internal/confidence"
	"github.com/abelbrown/atlas/internal/heatmap"
)

// PatternColumns are the column labels of the pattern heatmap.
var PatternColumns = []string{"coherence", "members"}

// View holds everything the renderers need from one report.
type View struct {
	SubjectID  string
	Confidence confidence.Badge
	Notes      string
	Summary    string

	Nodes []automata.Node
	Edges []automata.Edge

	// Transitions is a state × state matrix of transition probabilities.
	Transitions heatmap.Grid
	// Patterns has one row per pattern cluster, see PatternColumns.
	Patterns heatmap.Grid
}

// Graph shapes the state machine for display.
func (v View) Graph() automata.Display {
	return automata.Shape(v.Nodes, v.Edges)
}

// Extract reads a report payload. Any payload, including nil, yields a
// renderable View.
func Extract(p client.Payload) View {
	root := object(p)

	var v View
	v.SubjectID = str(root["subject_id"])

	conf := object(root["confidence"])
	overall, ok := number(conf["overall"])
	if !ok {
		overall = math.NaN()
	}
	v.Confidence = confidence.New(overall, confidence.DefaultLabel)
	v.Notes = str(conf["notes"])
	v.Summary = str(object(root["interpretation"])["summary"])

	am := object(root["automata"])
	v.Nodes = nodes(list(am["states"]))
	v.Edges = edges(list(am["transitions"]))
	v.Transitions = transitionGrid(v.Nodes, list(am["transitions"]))
	v.Patterns = patternGrid(list(root["patterns"]))

	return v
}

func nodes(states []any) []automata.Node {
	out := make([]automata.Node, 0, len(states))
	for _, s := range states {
		m := object(s)
		if m == nil {
			continue
		}
		n := automata.Node{
			ID:    str(m["state_id"]),
			Label: str(m["label"]),
		}
		if n.Label == "" {
			n.Label = n.ID
		}
		if w, ok := number(m["support"]); ok {
			n.Weight = automata.Float(w)
		}
		out = append(out, n)
	}
	return out
}

func edges(transitions []any) []automata.Edge {
	out := make([]automata.Edge, 0, len(transitions))
	for _, t := range transitions {
		m := object(t)
		if m == nil {
			continue
		}
		e := automata.Edge{
			From: str(m["from"]),
			To:   str(m["to"]),
		}
		if p, ok := number(m["probability"]); ok {
			e.Probability = automata.Float(p)
		}
		out = append(out, e)
	}
	return out
}

// transitionGrid lays transitions out over the states in state order. The
// first transition seen for a pair wins; pairs without one stay empty and
// render as 0. Transitions touching unknown states are left out.
func transitionGrid(states []automata.Node, transitions []any) heatmap.Grid {
	labels := make([]string, len(states))
	index := make(map[string]int, len(states))
	for i, s := range states {
		labels[i] = s.ID
		if _, dup := index[s.ID]; !dup {
			index[s.ID] = i
		}
	}

	table := make(heatmap.SparseRows, len(states))
	for _, t := range transitions {
		m := object(t)
		from, okFrom := index[str(m["from"])]
		to, okTo := index[str(m["to"])]
		if !okFrom || !okTo {
			continue
		}
		p, ok := number(m["probability"])
		if !ok {
			continue
		}
		if table[from] == nil {
			table[from] = make([]*float64, len(states))
		}
		if table[from][to] == nil {
			table[from][to] = automata.Float(p)
		}
	}

	return heatmap.Render(labels, labels, table)
}

func patternGrid(patterns []any) heatmap.Grid {
	labels := make([]string, 0, len(patterns))
	table := make(heatmap.SparseRows, 0, len(patterns))
	for i, p := range patterns {
		m := object(p)
		label := str(m["label"])
		if label == "" {
			label = str(m["cluster_id"])
		}
		if label == "" {
			label = "pattern " + strconv.Itoa(i+1)
		}
		labels = append(labels, label)

		row := make([]*float64, len(PatternColumns))
		if c, ok := number(m["coherence_score"]); ok {
			row[0] = automata.Float(c)
		}
		if members, ok := m["member_chunks"].([]any); ok {
			row[1] = automata.Float(float64(len(members)))
		}
		table = append(table, row)
	}
	return heatmap.Render(labels, PatternColumns, table)
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// number accepts the numeric forms a decoded payload can hold.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

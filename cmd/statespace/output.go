package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/smallnest/statespace/search"
)

// render writes res in format. The text format is styled for terminals
// and degrades to plain text elsewhere.
func render[S comparable, A any](w io.Writer, format string, strategy search.Strategy, res search.Result[S, A]) error {
	exp := search.NewExporter(res)

	var out string
	switch format {
	case formatMermaid:
		out = exp.DrawMermaid()
	case formatDOT:
		out = exp.DrawDOT()
	case formatASCII:
		out = exp.DrawASCII()
	default:
		out = renderText(w, strategy, res)
	}
	_, err := io.WriteString(w, out)
	return err
}

func renderText[S comparable, A any](w io.Writer, strategy search.Strategy, res search.Result[S, A]) string {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(10)
	outcome := r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	if res.Found() {
		outcome = outcome.Foreground(lipgloss.Color("2"))
	}
	faint := r.NewStyle().Faint(true)

	var sb strings.Builder
	row := func(name, value string) {
		sb.WriteString(label.Render(name) + value + "\n")
	}

	row("Strategy", string(strategy))
	row("Outcome", outcome.Render(res.Outcome.String()))
	if res.Found() {
		row("Actions", fmt.Sprint(res.Depth()))
		row("Cost", fmt.Sprintf("%g", res.PathCost()))
	}
	row("Expanded", fmt.Sprint(res.Stats.Expanded))
	row("Generated", fmt.Sprint(res.Stats.Generated))
	row("Frontier", fmt.Sprintf("%d max", res.Stats.MaxFrontier))
	if res.Stats.Iterations > 0 {
		row("Rounds", fmt.Sprint(res.Stats.Iterations))
	}

	if !res.Found() {
		return sb.String()
	}

	sb.WriteString("\n")
	states := res.PathStates()
	actions := res.PathActions()
	fmt.Fprintf(&sb, "  %s\n", faint.Render(fmt.Sprint(states[0])))
	for i, action := range actions {
		fmt.Fprintf(&sb, "  %2d. %v -> %v\n", i+1, action, states[i+1])
	}
	return sb.String()
}

// writeMetrics dumps the registry in the Prometheus text format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

package search

import (
	"fmt"
	"strings"
)

// Exporter renders a search result as a diagram of its solution path.
type Exporter[S comparable, A any] struct {
	result Result[S, A]
}

// NewExporter creates an exporter for res.
func NewExporter[S comparable, A any](res Result[S, A]) *Exporter[S, A] {
	return &Exporter[S, A]{result: res}
}

// MermaidOptions defines configuration for Mermaid diagram generation
type MermaidOptions struct {
	// Direction of the flowchart (e.g., "TD", "LR")
	Direction string
}

type pathStep struct {
	label  string
	action string
	cost   float64
}

// steps walks the solution from the root; step i>0 carries the action
// that produced it.
func (e *Exporter[S, A]) steps() []pathStep {
	if !e.result.Found() {
		return nil
	}
	var steps []pathStep
	for cur := e.result.Node; cur != nil; cur = cur.Parent {
		step := pathStep{label: fmt.Sprintf("%v", cur.State), cost: cur.PathCost}
		if cur.Parent != nil {
			step.action = fmt.Sprintf("%v", cur.Action)
		}
		steps = append(steps, step)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// DrawMermaid generates a top-down Mermaid flowchart of the path
func (e *Exporter[S, A]) DrawMermaid() string {
	return e.DrawMermaidWithOptions(MermaidOptions{
		Direction: "TD",
	})
}

// DrawMermaidWithOptions generates a Mermaid flowchart with custom options
func (e *Exporter[S, A]) DrawMermaidWithOptions(opts MermaidOptions) string {
	var sb strings.Builder

	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}
	fmt.Fprintf(&sb, "flowchart %s\n", direction)

	steps := e.steps()
	if steps == nil {
		outcome := e.result.Outcome.String()
		fmt.Fprintf(&sb, "    %s([\"%s\"])\n", outcome, outcome)
		fmt.Fprintf(&sb, "    style %s fill:#FFB6C1\n", outcome)
		return sb.String()
	}

	for i, step := range steps {
		fmt.Fprintf(&sb, "    n%d[\"%s\"]\n", i, mermaidEscape(step.label))
	}
	for i := 1; i < len(steps); i++ {
		fmt.Fprintf(&sb, "    n%d -->|%s| n%d\n", i-1, mermaidEscape(steps[i].action), i)
	}
	sb.WriteString("    style n0 fill:#87CEEB\n")
	fmt.Fprintf(&sb, "    style n%d fill:#90EE90\n", len(steps)-1)

	return sb.String()
}

// DrawDOT generates a DOT (Graphviz) representation of the path
func (e *Exporter[S, A]) DrawDOT() string {
	var sb strings.Builder

	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=TD;\n")
	sb.WriteString("    node [shape=box];\n")

	steps := e.steps()
	if steps == nil {
		outcome := e.result.Outcome.String()
		fmt.Fprintf(&sb, "    %s [label=%q, shape=ellipse, style=filled, fillcolor=lightpink];\n", outcome, outcome)
		sb.WriteString("}\n")
		return sb.String()
	}

	for i, step := range steps {
		attrs := ""
		switch i {
		case 0:
			attrs = ", style=filled, fillcolor=lightblue"
		case len(steps) - 1:
			attrs = ", style=filled, fillcolor=lightgreen"
		}
		fmt.Fprintf(&sb, "    n%d [label=%q%s];\n", i, step.label, attrs)
	}
	for i := 1; i < len(steps); i++ {
		fmt.Fprintf(&sb, "    n%d -> n%d [label=%q];\n", i-1, i, steps[i].action)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// DrawASCII generates a plain-text listing of the path with cumulative
// costs
func (e *Exporter[S, A]) DrawASCII() string {
	steps := e.steps()
	if steps == nil {
		return fmt.Sprintf("No solution (%s)\n", e.result.Outcome)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Solution: %d actions, cost %g\n", len(steps)-1, e.result.PathCost())
	fmt.Fprintf(&sb, "├── %s\n", steps[0].label)
	for i := 1; i < len(steps); i++ {
		connector := "├──"
		if i == len(steps)-1 {
			connector = "└──"
		}
		fmt.Fprintf(&sb, "%s %s -> %s (g=%g)\n", connector, steps[i].action, steps[i].label, steps[i].cost)
	}
	return sb.String()
}

func mermaidEscape(s string) string {
	return strings.NewReplacer(`"`, "#quot;", "|", "#124;").Replace(s)
}

package timing

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	// baseNameWidth is the name field width at the root; it shrinks by
	// indentShrink columns per nesting level.
	baseNameWidth = 30
	indentShrink  = 2
)

// Report renders the timer and its subtree as a human-readable text block.
//
// Each line shows the padded name, the total accumulated time, the node's
// percentage share of its parent's total (omitted at the root and under
// parents with a zero total), the call count, and mean/std and min/max in
// milliseconds. Nodes without samples render a placeholder line and their
// subtrees are skipped.
func (t *Timer) Report() string {
	var sb strings.Builder
	t.render(&sb, 0, 0)

	return sb.String()
}

// WriteReport renders the report to the given sink.
func (t *Timer) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, t.Report())
	return err
}

// String renders the report, so timers can be printed directly.
func (t *Timer) String() string {
	return t.Report()
}

func (t *Timer) render(sb *strings.Builder, level int, parentTotal float64) {
	nameWidth := baseNameWidth - indentShrink*level

	if t.Count() < 1 {
		fmt.Fprintf(sb, "%-*s has no samples yet.\n", nameWidth, t.Name())
		return
	}

	total := t.Total()

	fmt.Fprintf(sb, "%-*s%8.3gs  ", nameWidth, t.Name(), total)

	if parentTotal != 0 {
		fmt.Fprintf(sb, "%3d%% ", int(math.Round(100*total/parentTotal)))
	} else {
		sb.WriteString(strings.Repeat(" ", 5))
	}

	fmt.Fprintf(sb,
		"%8d  calls   mean|std: %8.3g | %-8.3g  [min|max: %8.3g | %-8.3g]  in ms\n",
		t.Count(), 1000*t.Mean(), 1000*t.Std(), 1000*t.Min(), 1000*t.Max())

	for _, child := range t.children {
		sb.WriteString(strings.Repeat("| ", level))
		sb.WriteString("|-")
		child.render(sb, level+1, total)
	}
}

package timing

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record feeds exactly one sample of duration d into tm.
func record(tm *Timer, clock *fakeClock, d time.Duration) {
	tm.Start()
	clock.advance(d)
	tm.Stop()
}

func TestReportWithoutSamples(t *testing.T) {
	tm, _ := newTestTimer("empty")

	expected := "empty" + strings.Repeat(" ", 25) + " has no samples yet.\n"
	assert.Equal(t, expected, tm.Report())
}

func TestReportSingleNode(t *testing.T) {
	tm, clock := newTestTimer("main")
	record(tm, clock, 100*time.Millisecond)

	report := tm.Report()

	assert.True(t, strings.HasPrefix(report, "main"))
	assert.Contains(t, report, "0.1s")
	assert.Contains(t, report, "1  calls")
	// Mean, min and max are scaled to milliseconds.
	assert.Contains(t, report, "mean|std:      100 | 0")
	assert.Contains(t, report, "[min|max:      100 | 100")
	assert.Contains(t, report, "in ms")
	// The root has no parent, so no percentage is shown.
	assert.NotContains(t, report, "%")
}

func TestChildPercentageOfParentTotal(t *testing.T) {
	tm, clock := newTestTimer("parent")
	child := tm.Nest("child")

	record(tm, clock, 200*time.Millisecond)
	record(child, clock, 100*time.Millisecond)

	lines := strings.Split(tm.Report(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	assert.NotContains(t, lines[0], "%")
	assert.Contains(t, lines[1], " 50% ")
}

func TestChildPercentageIsRounded(t *testing.T) {
	tm, clock := newTestTimer("parent")
	third := tm.Nest("third")
	twoThirds := tm.Nest("two-thirds")

	record(tm, clock, 300*time.Millisecond)
	record(third, clock, 100*time.Millisecond)
	record(twoThirds, clock, 200*time.Millisecond)

	lines := strings.Split(tm.Report(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	// 33.3% rounds down, 66.7% rounds up.
	assert.Contains(t, lines[1], " 33% ")
	assert.Contains(t, lines[2], " 67% ")
}

func TestZeroParentTotalOmitsPercentage(t *testing.T) {
	tm, clock := newTestTimer("parent")
	child := tm.Nest("child")

	// A sample of zero seconds: the parent has a count but no total.
	record(tm, clock, 0)
	record(child, clock, 50*time.Millisecond)

	lines := strings.Split(tm.Report(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	assert.NotContains(t, lines[1], "%")
}

func TestNodeWithoutSamplesStopsRecursion(t *testing.T) {
	tm, clock := newTestTimer("parent")
	child := tm.Nest("idle")
	grandchild := child.Nest("hidden")

	record(tm, clock, 10*time.Millisecond)
	record(grandchild, clock, time.Millisecond)

	report := tm.Report()

	assert.Contains(t, report, "has no samples yet.")
	assert.NotContains(t, report, "hidden")
}

func TestNestedIndentationMarkers(t *testing.T) {
	tm, clock := newTestTimer("root")
	child := tm.Nest("child")
	grandchild := child.Nest("grandchild")

	record(tm, clock, 40*time.Millisecond)
	record(child, clock, 20*time.Millisecond)
	record(grandchild, clock, 10*time.Millisecond)

	lines := strings.Split(tm.Report(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.True(t, strings.HasPrefix(lines[1], "|-child"))
	assert.True(t, strings.HasPrefix(lines[2], "| |-grandchild"))
}

func TestRenderedPercentageStaysInRange(t *testing.T) {
	tm, clock := newTestTimer("parent")
	child := tm.Nest("child")

	record(tm, clock, 30*time.Millisecond)
	record(child, clock, 10*time.Millisecond)

	match := regexp.MustCompile(`\s(\d+)% `).FindStringSubmatch(tm.Report())
	require.NotNil(t, match)
	assert.Regexp(t, `^(\d|\d\d|100)$`, match[1])
}

func TestWriteReportMatchesReport(t *testing.T) {
	tm, clock := newTestTimer("main")
	record(tm, clock, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, tm.WriteReport(&buf))

	assert.Equal(t, tm.Report(), buf.String())
	assert.Equal(t, tm.Report(), tm.String())
}

package utils

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats counts changed lines between two versions of a file
type DiffStats struct {
	Added   int
	Removed int
}

// Changed reports whether the two versions differ
func (s DiffStats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// LineDiff compares two texts line by line
func LineDiff(original, updated string) (DiffStats, []diffmatchpatch.Diff) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, updated)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var stats DiffStats
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") {
			n++
		}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Added += n
		case diffmatchpatch.DiffDelete:
			stats.Removed += n
		}
	}
	return stats, diffs
}

// FormatDiff renders the changed lines of a file with +/- markers
func FormatDiff(name, original, updated string) string {
	stats, diffs := LineDiff(original, updated)
	if !stats.Changed() {
		return fmt.Sprintf("%s: unchanged\n", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: +%d -%d\n", name, stats.Added, stats.Removed)
	for _, d := range diffs {
		var marker string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+ "
		case diffmatchpatch.DiffDelete:
			marker = "- "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(marker)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// noNewlineMarker follows a diff line whose content does not end with a
// newline, the way git renders and expects it.
const noNewlineMarker = "\\ No newline at end of file"

// unifiedDiffs renders both forms of a file's diff: the display form with
// descriptive labels and the patch form git apply understands.
func unifiedDiffs(file string, original, formatted []byte) (display, patch string) {
	a := splitLines(original)
	b := splitLines(formatted)

	display = renderUnified(file+" (before formatting)", file+" (after formatting)", a, b)
	patch = renderUnified("a/"+file, "b/"+file, a, b)

	return display, patch
}

// splitLines splits content into lines keeping terminators. Unlike
// difflib.SplitLines it adds no phantom empty line after newline-terminated
// content, so a patch never claims a line the file does not have. A final
// line lacking its terminator stays distinct from the terminated spelling,
// which keeps end-of-file newline changes visible in the diff.
func splitLines(content []byte) []string {
	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// renderUnified writes a unified diff over pre-split lines. Hunks come from
// difflib's sequence matcher; rendering is done here so files without a
// trailing newline get the no-newline marker git apply requires.
func renderUnified(fromFile, toFile string, a, b []string) string {
	groups := difflib.NewMatcher(a, b).GetGroupedOpCodes(diffContextLines)
	if len(groups) == 0 {
		return ""
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "--- %s\n", fromFile)
	fmt.Fprintf(&builder, "+++ %s\n", toFile)

	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		fmt.Fprintf(&builder, "@@ -%s +%s @@\n",
			formatRangeUnified(first.I1, last.I2),
			formatRangeUnified(first.J1, last.J2))

		for _, op := range group {
			if op.Tag == 'e' {
				writeLines(&builder, " ", a[op.I1:op.I2])
				continue
			}

			if op.Tag == 'r' || op.Tag == 'd' {
				writeLines(&builder, "-", a[op.I1:op.I2])
			}

			if op.Tag == 'r' || op.Tag == 'i' {
				writeLines(&builder, "+", b[op.J1:op.J2])
			}
		}
	}

	return builder.String()
}

// writeLines emits diff lines with the given prefix, appending the
// no-newline marker after a line that lacks its terminator.
func writeLines(builder *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		builder.WriteString(prefix)
		builder.WriteString(line)

		if !strings.HasSuffix(line, "\n") {
			builder.WriteString("\n" + noNewlineMarker + "\n")
		}
	}
}

// formatRangeUnified renders one side of a hunk header in unified diff
// convention: "start" for single-line ranges, "start,length" otherwise.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start

	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}

	if length == 0 {
		beginning--
	}

	return fmt.Sprintf("%d,%d", beginning, length)
}

package charutil

import "strings"

// SplitLines splits buf into line views on '\n', excluding the
// terminator. A trailing line without a newline is still included; an
// empty buffer yields no lines. Grounded on the original split_lines,
// which walks the buffer once and null-terminates each line in place —
// this implementation uses strings.Split since Go strings are immutable,
// but preserves the same splitting semantics (no restart, no skipped
// trailing partial line).
func SplitLines(buf string) []string {
	if buf == "" {
		return nil
	}
	lines := strings.Split(buf, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

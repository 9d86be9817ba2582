// Package stringtest helps tests assemble expected console output without
// burying escape-heavy lines inside one long string literal.
package stringtest

import "strings"

// JoinLF joins the given fragments with a single LF between each pair, so
// expected multi-line output reads one line per argument:
//
//	want := stringtest.JoinLF(
//		"first line",
//		"second line",
//	) // -> "first line\nsecond line"
//
// Note the result carries no trailing newline; append one explicitly when
// the final line is terminated.
func JoinLF(lines ...string) string {
	var sb strings.Builder

	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(line)
	}

	return sb.String()
}

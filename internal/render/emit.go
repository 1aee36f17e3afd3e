package render

import (
	"strings"
	"time"
)

// timestamp formats the header generation time. The clock is injectable per
// renderer so tests can pin it; the value is informational only and is never
// part of any output equality contract.
func timestamp(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Format(time.RFC3339)
}

// writeLines emits literal lines at the given indent. Blank lines stay
// unindented so generated files carry no trailing whitespace.
func writeLines(sb *strings.Builder, indent string, lines []string) {
	for _, line := range lines {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func escapeSingleQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func escapeDoubleQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

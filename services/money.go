package services

import (
	"strconv"
	"strings"
)

// formatUSD renders a dollar amount with thousands separators, e.g. 12500.0
// becomes "$12,500.00".
func formatUSD(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}

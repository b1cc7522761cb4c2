package charts

import (
	"fmt"
	"strings"
)

// formatThousands renders a value rounded to integer with comma-grouped
// digits, e.g. 1234567.8 -> "1,234,568".
func formatThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

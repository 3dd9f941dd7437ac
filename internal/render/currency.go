package render

import (
	"math"
	"strconv"
)

// FormatINR renders a rounded price with plain 3-digit grouping, e.g.
// "₹45,990". Unknown prices render as an em-dash sentinel.
func FormatINR(price *float64) string {
	if price == nil {
		return "—"
	}
	n := int64(math.Round(*price))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "₹" + string(grouped)
	if neg {
		out = "-" + out
	}
	return out
}

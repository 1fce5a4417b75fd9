package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a whole-unit amount with dot thousand separators,
// e.g. 150000 -> "150.000 ₫". Amounts are rounded to the nearest unit for
// display only; stored values keep their precision.
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out + " ₫"
}

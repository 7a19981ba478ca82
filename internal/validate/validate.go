package validate

import (
	"strconv"
	"strings"
)

// ProductID parses a positive integer product id from a path segment.
func ProductID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Quantity reports whether an order quantity is acceptable.
func Quantity(n int) bool {
	return n > 0
}

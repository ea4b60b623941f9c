package vercmp

import "strings"

// Compare returns -1 when a is older than b, 1 when a is newer and 0 when
// both denote the same version.
func Compare(a, b string) int {
	as := strings.Split(strings.TrimSpace(a), ".")
	bs := strings.Split(strings.TrimSpace(b), ".")

	n := max(len(as), len(bs))
	for i := range n {
		if order := compareSegment(segment(as, i), segment(bs, i)); order != 0 {
			return order
		}
	}
	return 0
}

// AtLeast reports whether version a is equal to or newer than b.
func AtLeast(a, b string) bool {
	return Compare(a, b) >= 0
}

func segment(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// compareSegment walks both segments chunk by chunk until one differs or
// both are exhausted.
func compareSegment(a, b string) int {
	for {
		an, asuf, arest := splitChunk(a)
		bn, bsuf, brest := splitChunk(b)
		if an == "" && asuf == "" && bn == "" && bsuf == "" {
			return 0
		}

		if order := compareNumbers(an, bn); order != 0 {
			return order
		}
		// No suffix ranks above any suffix.
		if order := compareBool(asuf == "", bsuf == ""); order != 0 {
			return order
		}
		if order := strings.Compare(asuf, bsuf); order != 0 {
			return order
		}

		a, b = arest, brest
	}
}

// splitChunk splits s into its leading digits, the non-digits that follow
// and whatever remains.
func splitChunk(s string) (digits, suffix, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	j := i
	for j < len(s) && !isDigit(s[j]) {
		j++
	}
	return s[:i], s[i:j], s[j:]
}

// compareNumbers compares two decimal digit strings of arbitrary length.
// An empty string counts as zero.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

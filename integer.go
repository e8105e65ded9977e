package envvalue

import "math"

// ParseInteger converts s to an integer leniently: leading whitespace is
// skipped, an optional sign and an optional "0d" prefix are accepted and
// the longest run of decimal digits is consumed. A single underscore may
// separate two digits.
// Anything that does not start with a number yields 0; it never fails.
// Values outside the int64 range saturate at math.MinInt64 / math.MaxInt64.
func ParseInteger(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	// optional base-10 radix prefix
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'd' || s[i+1] == 'D') {
		i += 2
	}

	var (
		n        uint64
		overflow bool
		limit    = uint64(math.MaxInt64)
	)
	if negative {
		limit++
	}

	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			// only between two digits
			if i == 0 || !isDigit(s[i-1]) || i+1 >= len(s) || !isDigit(s[i+1]) {
				break
			}
			continue
		}
		if !isDigit(c) {
			break
		}
		if overflow {
			continue
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			overflow = true
			n = limit
			continue
		}
		n = n*10 + d
	}

	if negative {
		if n == uint64(math.MaxInt64)+1 {
			return math.MinInt64
		}
		return -int64(n)
	}
	return int64(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

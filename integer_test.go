package envvalue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velmie/x/envvalue"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{in: "3", expected: 3},
		{in: "skip", expected: 0},
		{in: "", expected: 0},
		{in: "  42", expected: 42},
		{in: "\t\n\v\f\r7", expected: 7},
		{in: "-12abc", expected: -12},
		{in: "+5", expected: 5},
		{in: "- 5", expected: 0},
		{in: "+-5", expected: 0},
		{in: "12.9", expected: 12},
		{in: "0x1A", expected: 0},
		{in: "0d12", expected: 12},
		{in: "-0D7x", expected: -7},
		{in: "0d", expected: 0},
		{in: "0dx", expected: 0},
		{in: "0d_1", expected: 0},
		{in: "007", expected: 7},
		{in: "1_000", expected: 1000},
		{in: "1__000", expected: 1},
		{in: "_1", expected: 0},
		{in: "1_", expected: 1},
		{in: "1 2", expected: 1},
		{in: "9223372036854775807", expected: math.MaxInt64},
		{in: "9223372036854775808", expected: math.MaxInt64},
		{in: "-9223372036854775808", expected: math.MinInt64},
		{in: "-99999999999999999999999", expected: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, envvalue.ParseInteger(tt.in))
		})
	}
}

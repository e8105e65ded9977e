package envvalue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velmie/x/envvalue"
)

func TestResultOf(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected envvalue.Result
	}{
		{name: "nil", in: nil, expected: envvalue.Absent()},
		{name: "bool", in: false, expected: envvalue.Bool(false)},
		{name: "string", in: "x", expected: envvalue.Text("x")},
		{name: "symbol", in: envvalue.Symbol("x"), expected: envvalue.Sym("x")},
		{name: "directive", in: envvalue.ToS, expected: envvalue.Sym("to_s")},
		{name: "int", in: 3, expected: envvalue.Int(3)},
		{name: "int64", in: int64(-3), expected: envvalue.Int(-3)},
		{name: "uint16", in: uint16(8), expected: envvalue.Int(8)},
		{name: "result", in: envvalue.Int(9), expected: envvalue.Int(9)},
		{name: "other", in: time.Second, expected: envvalue.Other(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, envvalue.ResultOf(tt.in))
		})
	}
}

func TestResultAccessors(t *testing.T) {
	b, ok := envvalue.Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = envvalue.Text("true").Bool()
	assert.False(t, ok)

	s, ok := envvalue.Text("x").Text()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	// symbols and text are distinct
	_, ok = envvalue.Sym("x").Text()
	assert.False(t, ok)
	sym, ok := envvalue.Sym("x").Symbol()
	assert.True(t, ok)
	assert.Equal(t, envvalue.Symbol("x"), sym)
	assert.NotEqual(t, envvalue.Text("x"), envvalue.Sym("x"))

	i, ok := envvalue.Int(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	assert.True(t, envvalue.Absent().IsAbsent())
	assert.False(t, envvalue.Bool(false).IsAbsent())
}

func TestResultInterfaceAndString(t *testing.T) {
	tests := []struct {
		res    envvalue.Result
		kind   envvalue.Kind
		iface  any
		output string
	}{
		{res: envvalue.Absent(), kind: envvalue.KindAbsent, iface: nil, output: "<absent>"},
		{res: envvalue.Bool(true), kind: envvalue.KindBool, iface: true, output: "true"},
		{res: envvalue.Text("a"), kind: envvalue.KindText, iface: "a", output: "a"},
		{res: envvalue.Sym("a"), kind: envvalue.KindSymbol, iface: envvalue.Symbol("a"), output: ":a"},
		{res: envvalue.Int(-1), kind: envvalue.KindInt, iface: int64(-1), output: "-1"},
		{res: envvalue.Other(1.5), kind: envvalue.KindOther, iface: 1.5, output: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.res.Kind())
			assert.Equal(t, tt.iface, tt.res.Interface())
			assert.Equal(t, tt.output, tt.res.String())
		})
	}
}

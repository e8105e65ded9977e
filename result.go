package envvalue

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Result holds.
type Kind uint8

const (
	// KindAbsent means there is no value, e.g. a missing variable without a fallback
	KindAbsent Kind = iota
	// KindBool is a recognised true or false literal
	KindBool
	// KindText is a plain string
	KindText
	// KindSymbol is a string carrying symbol identity
	KindSymbol
	// KindInt is an integer
	KindInt
	// KindOther is a caller supplied fallback of any other type
	KindOther
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindBool:   "bool",
	KindText:   "text",
	KindSymbol: "symbol",
	KindInt:    "int",
	KindOther:  "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Symbol is a string with symbol identity. It compares unequal to a plain
// Text result holding the same characters.
type Symbol string

// Result is the outcome of a lookup. Its kind depends on the value found and
// on the configured policies.
type Result struct {
	kind  Kind
	b     bool
	s     string
	i     int64
	other any
}

// Absent returns a Result holding no value.
func Absent() Result {
	return Result{}
}

// Bool returns a boolean Result.
func Bool(b bool) Result {
	return Result{kind: KindBool, b: b}
}

// Text returns a string Result.
func Text(s string) Result {
	return Result{kind: KindText, s: s}
}

// Sym returns a symbol Result.
func Sym(s string) Result {
	return Result{kind: KindSymbol, s: s}
}

// Int returns an integer Result.
func Int(i int64) Result {
	return Result{kind: KindInt, i: i}
}

// Other wraps an arbitrary value. Prefer ResultOf which maps well known
// types onto their dedicated kinds.
func Other(v any) Result {
	return Result{kind: KindOther, other: v}
}

// ResultOf converts a Go value into a Result: nil becomes Absent, booleans,
// strings, Symbols and integers get their own kinds, a Result is returned as
// is and anything else is carried as KindOther.
func ResultOf(v any) Result {
	switch t := v.(type) {
	case nil:
		return Absent()
	case Result:
		return t
	case bool:
		return Bool(t)
	case string:
		return Text(t)
	case Symbol:
		return Sym(string(t))
	case Directive:
		return Sym(string(t))
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	default:
		return Other(v)
	}
}

// Kind reports the variant held by r.
func (r Result) Kind() Kind {
	return r.kind
}

// IsAbsent reports whether r holds no value.
func (r Result) IsAbsent() bool {
	return r.kind == KindAbsent
}

// Bool returns the boolean and true when r is KindBool.
func (r Result) Bool() (bool, bool) {
	return r.b, r.kind == KindBool
}

// Text returns the string and true when r is KindText.
func (r Result) Text() (string, bool) {
	return r.s, r.kind == KindText
}

// Symbol returns the symbol and true when r is KindSymbol.
func (r Result) Symbol() (Symbol, bool) {
	return Symbol(r.s), r.kind == KindSymbol
}

// Int returns the integer and true when r is KindInt.
func (r Result) Int() (int64, bool) {
	return r.i, r.kind == KindInt
}

// Interface returns the held value as a plain Go value: nil, bool, string,
// Symbol, int64 or the caller's fallback.
func (r Result) Interface() any {
	switch r.kind {
	case KindBool:
		return r.b
	case KindText:
		return r.s
	case KindSymbol:
		return Symbol(r.s)
	case KindInt:
		return r.i
	case KindOther:
		return r.other
	}
	return nil
}

// String formats r for debugging. Symbols are prefixed with a colon.
func (r Result) String() string {
	switch r.kind {
	case KindAbsent:
		return "<absent>"
	case KindBool:
		return strconv.FormatBool(r.b)
	case KindText:
		return r.s
	case KindSymbol:
		return ":" + r.s
	case KindInt:
		return strconv.FormatInt(r.i, 10)
	}
	return fmt.Sprint(r.other)
}

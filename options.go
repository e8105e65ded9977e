package envvalue

// Directive names a behaviour instead of supplying a literal fallback.
type Directive string

const (
	// Raise makes the lookup fail with an *Error
	Raise Directive = "raise"
	// Fail is an alias of Raise
	Fail Directive = "fail"
	// Abort is an alias of Raise
	Abort Directive = "abort"

	// AsString returns an unrecognised value unchanged
	AsString Directive = "string"
	// ToS is an alias of AsString
	ToS Directive = "to_s"
	// AsSymbol returns an unrecognised value as a Symbol
	AsSymbol Directive = "symbol"
	// ToSym is an alias of AsSymbol
	ToSym Directive = "to_sym"
	// AsInteger parses an unrecognised value with ParseInteger
	AsInteger Directive = "integer"
	// ToI is an alias of AsInteger
	ToI Directive = "to_i"
)

var directives = map[Directive]struct{}{
	Raise: {}, Fail: {}, Abort: {},
	AsString: {}, ToS: {},
	AsSymbol: {}, ToSym: {},
	AsInteger: {}, ToI: {},
}

func (d Directive) raises() bool {
	return d == Raise || d == Fail || d == Abort
}

var (
	defaultTrueValues  = []string{"1", "true"}
	defaultFalseValues = []string{"0", "false"}
)

// policy is either a directive or a literal fallback.
type policy struct {
	directive Directive
	fallback  Result
	set       bool
}

func policyOf(v any) policy {
	switch t := v.(type) {
	case Directive:
		return policy{directive: t, set: true}
	case Symbol:
		// a symbol naming a directive is that directive
		if _, ok := directives[Directive(t)]; ok {
			return policy{directive: Directive(t), set: true}
		}
	}
	return policy{fallback: ResultOf(v), set: true}
}

type config struct {
	trueExtra   []string
	falseExtra  []string
	trueValues  []string
	falseValues []string

	def     policy
	missing policy
	invalid policy
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// trueList returns the values recognised as true. An explicit TrueValues
// list replaces both the built-in literals and the True extras.
func (c *config) trueList() []string {
	if c.trueValues != nil {
		return c.trueValues
	}
	return concat(defaultTrueValues, c.trueExtra)
}

func (c *config) falseList() []string {
	if c.falseValues != nil {
		return c.falseValues
	}
	return concat(defaultFalseValues, c.falseExtra)
}

func (c *config) missingPolicy() policy {
	if c.missing.set {
		return c.missing
	}
	return c.def
}

func (c *config) invalidPolicy() policy {
	if c.invalid.set {
		return c.invalid
	}
	return c.def
}

// Option configures a single lookup.
type Option func(*config)

// True appends values recognised as boolean true.
func True(values ...string) Option {
	return func(c *config) {
		c.trueExtra = append(c.trueExtra, values...)
	}
}

// False appends values recognised as boolean false.
func False(values ...string) Option {
	return func(c *config) {
		c.falseExtra = append(c.falseExtra, values...)
	}
}

// TrueValues replaces the whole list of true literals, built-ins included.
func TrueValues(values ...string) Option {
	return func(c *config) {
		c.trueValues = append([]string{}, values...)
	}
}

// FalseValues replaces the whole list of false literals, built-ins included.
func FalseValues(values ...string) Option {
	return func(c *config) {
		c.falseValues = append([]string{}, values...)
	}
}

// Default sets the result for both a missing and an unrecognised value
// unless Missing or Invalid say otherwise.
func Default(v any) Option {
	return func(c *config) {
		c.def = policyOf(v)
	}
}

// Missing sets what happens when the variable is not set: a raise-style
// Directive fails the lookup, anything else is returned as is.
func Missing(v any) Option {
	return func(c *config) {
		c.missing = policyOf(v)
	}
}

// Invalid sets what happens when the value is neither a true nor a false
// literal: a Directive converts the value or fails the lookup, anything
// else is returned as is.
func Invalid(v any) Option {
	return func(c *config) {
		c.invalid = policyOf(v)
	}
}

// Convert is Invalid under the name Value callers use.
func Convert(v any) Option {
	return Invalid(v)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

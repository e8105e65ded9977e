package envvalue

import (
	"fmt"
)

// ErrorHandler defines how errors from sources should be handled.
// It returns whether resolution continues with the next source and,
// when it does not, the error to report.
type ErrorHandler func(err error, sourceName string) (bool, error)

// ContinueOnError ignores errors and continues to next source
func ContinueOnError(err error, sourceName string) (bool, error) {
	return true, nil
}

// BreakOnError stops resolution on first error
func BreakOnError(err error, sourceName string) (bool, error) {
	return false, err
}

// LogOnError logs the failure and continues to next source.
func LogOnError(logger Logger) ErrorHandler {
	return func(err error, sourceName string) (bool, error) {
		logger.Error("environment source lookup failed", "source", sourceName, "error", err)
		return true, nil
	}
}

// Reader looks variables up in its sources, in order, and converts them
// according to per-call options. The first source holding a name wins.
type Reader struct {
	sources      []Source
	errorHandler ErrorHandler
	prefix       string
}

// NewReader creates a Reader querying the given sources in the order they are
// provided. By default, uses BreakOnError as the error handler.
func NewReader(sources ...Source) *Reader {
	return &Reader{
		sources:      sources,
		errorHandler: BreakOnError,
	}
}

// WithErrorHandler sets a custom error handler and returns the reader for chaining.
func (r *Reader) WithErrorHandler(handler ErrorHandler) *Reader {
	r.errorHandler = handler
	return r
}

// WithPrefix makes every lookup use prefix+key as the variable name.
func (r *Reader) WithPrefix(prefix string) *Reader {
	r.prefix = prefix
	return r
}

// AddSource adds a new source with the lowest priority.
func (r *Reader) AddSource(src Source) {
	r.sources = append(r.sources, src)
}

// Boolean looks key up and returns true or false for recognised literals
// ("1", "true" and "0", "false" plus any True / False extras). Missing and
// unrecognised values produce an Absent result unless Default, Missing or
// Invalid configure otherwise.
func (r *Reader) Boolean(key string, opts ...Option) (Result, error) {
	return r.lookup(r.prefix+key, newConfig(opts))
}

// BooleanValue is an alias of Boolean.
func (r *Reader) BooleanValue(key string, opts ...Option) (Result, error) {
	return r.Boolean(key, opts...)
}

// Value is Boolean with unrecognised values returned as text. Use Convert
// to choose another conversion or fallback.
func (r *Reader) Value(key string, opts ...Option) (Result, error) {
	c := &config{invalid: policyOf(AsString)}
	for _, opt := range opts {
		opt(c)
	}
	return r.lookup(r.prefix+key, c)
}

// Coalesce evaluates the first of names that is present in any source, or
// the last one when none is. Options apply as for Boolean.
func (r *Reader) Coalesce(names []string, opts ...Option) (Result, error) {
	if len(names) == 0 {
		return Absent(), nil
	}
	c := newConfig(opts)
	for _, name := range names[:len(names)-1] {
		value, found, err := r.find(r.prefix + name)
		if err != nil {
			return Absent(), err
		}
		if found {
			return evaluate(r.prefix+name, value, true, c)
		}
	}
	return r.lookup(r.prefix+names[len(names)-1], c)
}

func (r *Reader) lookup(key string, c *config) (Result, error) {
	value, found, err := r.find(key)
	if err != nil {
		return Absent(), err
	}
	return evaluate(key, value, found, c)
}

// evaluate turns the outcome of a single lookup into a Result.
func evaluate(key, value string, found bool, c *config) (Result, error) {
	if !found {
		p := c.missingPolicy()
		if p.directive.raises() {
			return Absent(), &Error{Key: key, Directive: p.directive, Cause: ErrMissing}
		}
		if p.directive != "" {
			return Sym(string(p.directive)), nil
		}
		return p.fallback, nil
	}

	trueValues, falseValues := c.trueList(), c.falseList()
	if contains(trueValues, value) {
		return Bool(true), nil
	}
	if contains(falseValues, value) {
		return Bool(false), nil
	}

	p := c.invalidPolicy()
	switch p.directive {
	case "":
		return p.fallback, nil
	case AsString, ToS:
		return Text(value), nil
	case AsSymbol, ToSym:
		return Sym(value), nil
	case AsInteger, ToI:
		return Int(ParseInteger(value)), nil
	case Raise, Fail, Abort:
		return Absent(), &Error{
			Key:       key,
			Value:     value,
			Allowed:   concat(trueValues, falseValues),
			Directive: p.directive,
			Cause:     ErrInvalid,
		}
	}
	return Sym(string(p.directive)), nil
}

// find returns the value of key from the first source that has it.
func (r *Reader) find(key string) (string, bool, error) {
	for _, src := range r.sources {
		val, exist, err := src.Lookup(key)
		if err != nil {
			if r.errorHandler == nil {
				return "", false, sourceError(key, src, err)
			}
			continueResolution, handlerErr := r.errorHandler(err, src.Name())
			if !continueResolution {
				if handlerErr == nil {
					return "", false, nil
				}
				return "", false, sourceError(key, src, handlerErr)
			}
			continue
		}
		if exist {
			return val, true, nil
		}
	}
	return "", false, nil
}

func sourceError(key string, src Source, err error) error {
	return &Error{
		Key:    key,
		Source: src.Name(),
		Cause:  fmt.Errorf("%w: %w", ErrSource, err),
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

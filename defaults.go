package envvalue

// DefaultReader is the reader used by the package functions.
// It reads the process environment.
var DefaultReader = NewReader(EnvSource{})

// Boolean looks key up in the process environment. See Reader.Boolean.
func Boolean(key string, opts ...Option) (Result, error) {
	return DefaultReader.Boolean(key, opts...)
}

// BooleanValue is an alias of Boolean.
func BooleanValue(key string, opts ...Option) (Result, error) {
	return DefaultReader.Boolean(key, opts...)
}

// Value looks key up in the process environment, returning unrecognised
// values as text unless Convert says otherwise. See Reader.Value.
func Value(key string, opts ...Option) (Result, error) {
	return DefaultReader.Value(key, opts...)
}

// Coalesce evaluates the first of names set in the process environment.
func Coalesce(names []string, opts ...Option) (Result, error) {
	return DefaultReader.Coalesce(names, opts...)
}

package envvalue

// Source is anything variables can be looked up in, usually the process
// environment.
type Source interface {
	// Lookup retrieves a value by name from the source.
	// It returns the value, a flag telling whether the name is present at all
	// (a present variable may hold an empty string), and an error if the
	// source could not be read.
	Lookup(name string) (value string, found bool, err error)

	// Name returns a human-readable name of the source for logging purposes.
	Name() string
}

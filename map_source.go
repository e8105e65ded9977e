package envvalue

// MapSource implements Source for a map[string]string.
// Useful for testing or in-memory configuration.
type MapSource struct {
	SourceName string
	Data       map[string]string
}

// NewMapSource creates a new MapSource with an optional name.
func NewMapSource(data map[string]string, name string) *MapSource {
	if name == "" {
		name = "Map"
	}
	return &MapSource{
		SourceName: name,
		Data:       data,
	}
}

func (s *MapSource) Lookup(key string) (string, bool, error) {
	val, found := s.Data[key]
	return val, found, nil
}

func (s *MapSource) Name() string {
	return s.SourceName
}

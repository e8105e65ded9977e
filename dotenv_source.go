package envvalue

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
)

// DotenvSource serves variables parsed from dotenv formatted text.
// It never touches the file system: callers pass the content in.
type DotenvSource struct {
	name   string
	values map[string]string
}

// NewDotenvSource parses r once and keeps the resulting variables.
func NewDotenvSource(r io.Reader, name string) (*DotenvSource, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv content: %w", err)
	}
	if name == "" {
		name = "dotenv"
	}
	return &DotenvSource{name: name, values: values}, nil
}

// ParseDotenv is NewDotenvSource for a string.
func ParseDotenv(content string) (*DotenvSource, error) {
	return NewDotenvSource(strings.NewReader(content), "")
}

func (s *DotenvSource) Lookup(name string) (string, bool, error) {
	value, found := s.values[name]
	return value, found, nil
}

func (s *DotenvSource) Name() string {
	return fmt.Sprintf("dotenv[%s]", s.name)
}

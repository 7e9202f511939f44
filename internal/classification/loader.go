package classification

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

type keywordFile struct {
	Keywords []Keyword `yaml:"keywords"`
}

// ParseKeywords decodes a keyword extension table from YAML.
func ParseKeywords(r io.Reader) ([]Keyword, error) {
	var f keywordFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode keyword file: %w", err)
	}

	return f.Keywords, nil
}

// LoadKeywords reads a keyword extension table from a YAML file.
func LoadKeywords(path string) ([]Keyword, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: keyword file %s", common.ErrMissingConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file %s: %w", path, err)
	}

	keywords, err := ParseKeywords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return keywords, nil
}

// WithExtensions returns ext followed by the defaults, so extension keywords
// are matched first.
func WithExtensions(ext []Keyword) []Keyword {
	out := make([]Keyword, 0, len(ext)+len(defaultTable)*8)
	out = append(out, ext...)
	return append(out, DefaultKeywords()...)
}

package banks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

// File is the on-disk layout of a pattern extension file.
type File struct {
	Banks []BankPatternSet `yaml:"banks"`
}

// ParsePatterns decodes extension sets from YAML.
func ParsePatterns(r io.Reader) ([]BankPatternSet, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode pattern file: %w", err)
	}

	return f.Banks, nil
}

// LoadPatterns reads extension sets from a YAML file.
func LoadPatterns(path string) ([]BankPatternSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user config
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: pattern file %s", common.ErrMissingConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	sets, err := ParsePatterns(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sets, nil
}

// Merge appends extension sets to base. An extension with the ID of an
// existing set replaces it in place.
func Merge(base, ext []BankPatternSet) []BankPatternSet {
	out := make([]BankPatternSet, len(base), len(base)+len(ext))
	copy(out, base)

	index := make(map[BankID]int, len(out))
	for i, s := range out {
		index[normalizeID(s.ID)] = i
	}

	for _, s := range ext {
		id := normalizeID(s.ID)
		if i, ok := index[id]; ok {
			out[i] = s
			continue
		}
		index[id] = len(out)
		out = append(out, s)
	}

	return out
}

func normalizeID(id BankID) BankID {
	return BankID(strings.ToLower(strings.TrimSpace(string(id))))
}

package common

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileCaseInsensitive compiles pattern with the (?i) flag prepended unless
// the pattern already sets it.
func CompileCaseInsensitive(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

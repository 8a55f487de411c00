// SPDX-License-Identifier: MPL-2.0

package env

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// OptionalSuffix marks a dotenv path whose absence is not an error.
const OptionalSuffix = "?"

// ErrDotenvLoad is the sentinel error wrapped by DotenvError.
var ErrDotenvLoad = errors.New("failed to load env file")

// DotenvError is returned when a dotenv file cannot be read or parsed.
type DotenvError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DotenvError) Error() string {
	return fmt.Sprintf("failed to load env file '%s': %v", e.Path, e.Err)
}

// Unwrap returns ErrDotenvLoad and the underlying cause.
func (e *DotenvError) Unwrap() []error { return []error{ErrDotenvLoad, e.Err} }

// WithDotenv returns a new snapshot with the variables of each dotenv file
// layered on top of s, in order. Later files override earlier ones, and every
// file overrides the base snapshot. Relative paths are resolved against baseDir
// (the current directory when empty). A path ending in '?' is optional.
func (s Snapshot) WithDotenv(baseDir string, paths ...string) (Snapshot, error) {
	result := s
	for _, p := range paths {
		optional := strings.HasSuffix(p, OptionalSuffix)
		clean := strings.TrimSuffix(p, OptionalSuffix)

		full := filepath.FromSlash(clean)
		if !filepath.IsAbs(full) && baseDir != "" {
			full = filepath.Join(baseDir, full)
		}

		vars, err := godotenv.Read(full)
		if err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Snapshot{}, &DotenvError{Path: clean, Err: err}
		}
		result = result.With(vars)
	}
	return result, nil
}

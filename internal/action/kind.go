// SPDX-License-Identifier: MPL-2.0

package action

import (
	"errors"
	"fmt"
	"strings"
)

// Action kinds. Each maps to a single dotnet verb of the same name.
const (
	KindBuild   Kind = "build"
	KindClean   Kind = "clean"
	KindPublish Kind = "publish"
	KindTest    Kind = "test"
	KindPack    Kind = "pack"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid action kind")

type (
	// Kind identifies one lifecycle action.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid action kind %q (valid: %s)", e.Value, strings.Join(kindNames(), ", "))
}

// Unwrap returns ErrInvalidKind so callers can use errors.Is for programmatic detection.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Kinds returns every action kind in lifecycle order.
func Kinds() []Kind {
	return []Kind{KindBuild, KindClean, KindPublish, KindTest, KindPack}
}

// ParseKind converts a user-provided name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if isValid, errs := k.IsValid(); !isValid {
		return "", errs[0]
	}
	return k, nil
}

// IsValid returns whether the Kind is one of the declared kinds,
// and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	for _, known := range Kinds() {
		if k == known {
			return true, nil
		}
	}
	return false, []error{&InvalidKindError{Value: k}}
}

// Verb returns the dotnet subcommand for the kind.
func (k Kind) Verb() string { return string(k) }

// String returns the kind name.
func (k Kind) String() string { return string(k) }

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

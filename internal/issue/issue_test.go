// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "run dotnet"},
			expected: "failed to run dotnet",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load env file", Resource: "ci.env"},
			expected: "failed to load env file: ci.env",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "run dotnet", Resource: "dotnet", Cause: errors.New("not found")},
			expected: "failed to run dotnet: dotnet: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("executable file not found in $PATH")
	err := NewErrorContext().
		WithOperation("run dotnet").
		WithSuggestion("Install the .NET SDK").
		Wrap(inner).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "• Install the .NET SDK") {
		t.Errorf("Format(false) missing suggestion:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include the chain:\n%s", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. executable file not found") {
		t.Errorf("Format(true) missing chain:\n%s", verbose)
	}
	if !errors.Is(err, inner) {
		t.Error("ActionableError does not unwrap to its cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestIssueCatalog(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 7 {
		t.Fatalf("Values() returned %d issues, want 7", len(values))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not sorted at %d", i)
		}
	}
	for _, is := range values {
		if Get(is.Id()) != is {
			t.Errorf("Get(%d) mismatch", is.Id())
		}
		if strings.TrimSpace(string(is.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no message", is.Id())
		}
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestIssueRender(t *testing.T) {
	t.Parallel()

	out, err := Get(ToolchainNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "toolchain was not found") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
}

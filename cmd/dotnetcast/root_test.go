// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/invowk/dotnet-cast/internal/config"
	"github.com/invowk/dotnet-cast/internal/issue"

	"github.com/charmbracelet/fang"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		// Test binaries report Main.Version == "(devel)".
		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	ae := issue.NewErrorContext().
		WithOperation("run dotnet").
		WithIssue(issue.ToolchainNotFoundId).
		WithSuggestion("Install the .NET SDK").
		Wrap(errors.New("executable file not found")).
		BuildError()

	tests := []struct {
		name     string
		err      error
		verbose  bool
		wantSubs []string
		wantNone bool
	}{
		{
			name:     "toolchain failure is silent",
			err:      &ExitError{Code: 2},
			wantNone: true,
		},
		{
			name:     "actionable error shows suggestions",
			err:      &ExitError{Code: 1, Err: ae},
			wantSubs: []string{"failed to run dotnet", "Install the .NET SDK"},
		},
		{
			name:     "verbose adds the error chain",
			err:      ae,
			verbose:  true,
			wantSubs: []string{"Error chain:", "executable file not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := &rootOptions{verbose: tt.verbose, cfg: config.DefaultConfig()}
			var buf bytes.Buffer
			opts.handleError(&buf, fang.Styles{}, tt.err)

			if tt.wantNone {
				if buf.Len() != 0 {
					t.Errorf("output = %q, want none", buf.String())
				}
				return
			}
			for _, want := range tt.wantSubs {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output = %q, want substring %q", buf.String(), want)
				}
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
	wrapped := &ExitError{Code: 1, Err: cause}
	if wrapped.Error() != "boom" || !errors.Is(wrapped, cause) {
		t.Errorf("ExitError does not expose its cause: %v", wrapped)
	}
}

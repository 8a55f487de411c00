// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package runtime

import (
	"errors"
	"strings"
	"testing"

	"github.com/invowk/dotnet-cast/internal/command"
)

func TestPTYRuntime_ForwardsOutputAndExitCode(t *testing.T) {
	t.Parallel()

	ctx, stdout, _ := newTestContext(command.Spec{"sh", "-c", "echo from-pty; exit 3"})
	result := NewPTYRuntime().Execute(ctx)
	if errors.Is(result.Error, ErrPTYUnavailable) {
		t.Skipf("no pty on this host: %v", result.Error)
	}

	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if !strings.Contains(stdout.String(), "from-pty") {
		t.Errorf("stdout = %q, want it to contain from-pty", stdout.String())
	}
}

func TestPTYRuntime_MissingProgram(t *testing.T) {
	t.Parallel()

	ctx, _, _ := newTestContext(command.Spec{"dotnet-cast-definitely-missing-binary"})
	result := NewPTYRuntime().Execute(ctx)
	if errors.Is(result.Error, ErrPTYUnavailable) {
		t.Skipf("no pty on this host: %v", result.Error)
	}
	if result.Error == nil || result.ExitCode != 1 {
		t.Errorf("result = exit %d, err %v; want spawn failure", result.ExitCode, result.Error)
	}
}

// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/invowk/dotnet-cast/internal/command"
	"github.com/invowk/dotnet-cast/internal/env"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func newTestContext(spec command.Spec) (*ExecutionContext, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	ctx := NewExecutionContext(context.Background(), spec, env.FromOS())
	ctx.IO = IOContext{Stdout: &stdout, Stderr: &stderr, Stdin: strings.NewReader("")}
	return ctx, &stdout, &stderr
}

func TestNativeRuntime_StreamsOutputAndExitCode(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx, stdout, stderr := newTestContext(command.Spec{"sh", "-c", "echo out; echo err 1>&2; exit 7"})
	result := NewNativeRuntime().Execute(ctx)

	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", result.ExitCode)
	}
	if result.Success() {
		t.Error("Success() = true for exit code 7")
	}
	if got := stdout.String(); got != "out\n" {
		t.Errorf("stdout = %q, want %q", got, "out\n")
	}
	if got := stderr.String(); got != "err\n" {
		t.Errorf("stderr = %q, want %q", got, "err\n")
	}
}

func TestNativeRuntime_Success(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx, _, _ := newTestContext(command.Spec{"sh", "-c", "exit 0"})
	result := NewNativeRuntime().Execute(ctx)
	if !result.Success() {
		t.Errorf("Success() = false: exit %d, err %v", result.ExitCode, result.Error)
	}
}

func TestNativeRuntime_PassesSnapshotEnv(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx, stdout, _ := newTestContext(command.Spec{"sh", "-c", `printf %s "$INPUT_PROJECT"`})
	ctx.Env = env.FromOS().With(map[string]string{"INPUT_PROJECT": "src/app"})

	if result := NewNativeRuntime().Execute(ctx); !result.Success() {
		t.Fatalf("execution failed: exit %d, err %v", result.ExitCode, result.Error)
	}
	if got := stdout.String(); got != "src/app" {
		t.Errorf("child saw INPUT_PROJECT = %q, want src/app", got)
	}
}

func TestNativeRuntime_WorkDir(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	dir := t.TempDir()
	ctx, stdout, _ := newTestContext(command.Spec{"sh", "-c", "pwd"})
	ctx.WorkDir = dir

	if result := NewNativeRuntime().Execute(ctx); !result.Success() {
		t.Fatalf("execution failed: exit %d, err %v", result.ExitCode, result.Error)
	}
	if got := strings.TrimSpace(stdout.String()); !strings.HasSuffix(got, strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}

func TestNativeRuntime_MissingProgram(t *testing.T) {
	t.Parallel()

	ctx, _, _ := newTestContext(command.Spec{"dotnet-cast-definitely-missing-binary", "build"})
	result := NewNativeRuntime().Execute(ctx)

	if result.Error == nil {
		t.Fatal("expected spawn error for missing program")
	}
	if !errors.Is(result.Error, exec.ErrNotFound) {
		t.Errorf("error does not wrap exec.ErrNotFound: %v", result.Error)
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
}

func TestValidateEmptyCommand(t *testing.T) {
	t.Parallel()

	ctx, _, _ := newTestContext(nil)
	for _, rt := range []Runtime{NewNativeRuntime(), NewPTYRuntime()} {
		if err := rt.Validate(ctx); !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("%s.Validate() = %v, want ErrEmptyCommand", rt.Name(), err)
		}
		if result := rt.Execute(ctx); !errors.Is(result.Error, ErrEmptyCommand) {
			t.Errorf("%s.Execute() error = %v, want ErrEmptyCommand", rt.Name(), result.Error)
		}
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := BuildRegistry()
	if _, err := r.Get(RuntimeTypeNative); err != nil {
		t.Errorf("Get(native) error: %v", err)
	}
	if _, err := r.Get("container"); !errors.Is(err, ErrRuntimeNotRegistered) {
		t.Errorf("Get(container) error = %v, want ErrRuntimeNotRegistered", err)
	}

	if got := r.SelectType(false); got != RuntimeTypeNative {
		t.Errorf("SelectType(false) = %s, want native", got)
	}
	wantPTY := RuntimeTypePTY
	if goruntime.GOOS == "windows" {
		wantPTY = RuntimeTypeNative
	}
	if got := r.SelectType(true); got != wantPTY {
		t.Errorf("SelectType(true) = %s, want %s", got, wantPTY)
	}

	result := NewRegistry().Execute(RuntimeTypeNative, &ExecutionContext{})
	if !errors.Is(result.Error, ErrRuntimeNotRegistered) {
		t.Errorf("empty registry Execute() error = %v", result.Error)
	}
}

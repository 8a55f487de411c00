// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"mvdan.cc/sh/v3/syntax"
)

// FakeToolchain is a shell script posing as the dotnet executable.
type FakeToolchain struct {
	// Path is the absolute path of the script.
	Path     string
	argsFile string
	envFile  string
	pwdFile  string
}

// NewFakeToolchain writes an executable script that records how it was
// invoked, prints stdout, and exits with exitCode. The test is skipped on
// hosts without a POSIX shell.
func NewFakeToolchain(t testing.TB, exitCode int, stdout string) *FakeToolchain {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("fake toolchain requires a POSIX shell")
	}

	dir := t.TempDir()
	f := &FakeToolchain{
		Path:     filepath.Join(dir, "dotnet"),
		argsFile: filepath.Join(dir, "args.txt"),
		envFile:  filepath.Join(dir, "env.txt"),
		pwdFile:  filepath.Join(dir, "pwd.txt"),
	}

	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "printf '%%s\\n' \"$@\" > %s\n", mustQuote(t, f.argsFile))
	fmt.Fprintf(&sb, "/usr/bin/env > %s\n", mustQuote(t, f.envFile))
	fmt.Fprintf(&sb, "pwd > %s\n", mustQuote(t, f.pwdFile))
	if stdout != "" {
		fmt.Fprintf(&sb, "printf '%%s' %s\n", mustQuote(t, stdout))
	}
	fmt.Fprintf(&sb, "exit %d\n", exitCode)

	if err := os.WriteFile(f.Path, []byte(sb.String()), 0o755); err != nil {
		t.Fatalf("failed to write fake toolchain: %v", err)
	}
	return f
}

// Invoked reports whether the script has run.
func (f *FakeToolchain) Invoked() bool {
	_, err := os.Stat(f.argsFile)
	return err == nil
}

// Args returns the arguments of the last invocation, excluding the program.
func (f *FakeToolchain) Args(t testing.TB) []string {
	t.Helper()
	return readLines(t, f.argsFile)
}

// Env returns the value of name in the environment of the last invocation.
func (f *FakeToolchain) Env(t testing.TB, name string) (string, bool) {
	t.Helper()
	for _, line := range readLines(t, f.envFile) {
		if k, v, ok := strings.Cut(line, "="); ok && k == name {
			return v, true
		}
	}
	return "", false
}

// Dir returns the working directory of the last invocation.
func (f *FakeToolchain) Dir(t testing.TB) string {
	t.Helper()
	lines := readLines(t, f.pwdFile)
	if len(lines) == 0 {
		t.Fatal("fake toolchain recorded no working directory")
	}
	return lines[0]
}

func readLines(t testing.TB, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("fake toolchain was not invoked: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func mustQuote(t testing.TB, s string) string {
	t.Helper()
	q, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		t.Fatalf("cannot quote %q for the shell: %v", s, err)
	}
	return q
}

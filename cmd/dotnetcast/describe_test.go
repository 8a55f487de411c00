// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/invowk/dotnet-cast/internal/action"
	"github.com/invowk/dotnet-cast/internal/issue"

	"gopkg.in/yaml.v3"
)

func TestDescribe_Markdown(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "describe", "publish")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}
	for _, want := range []string{"dotnet publish", "Publish a .NET project"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestDescribe_YAML(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "describe", "test", "--format", "yaml")
	if res.err != nil {
		t.Fatalf("execute error = %v", res.err)
	}

	var m action.Manifest
	if err := yaml.Unmarshal([]byte(res.stdout), &m); err != nil {
		t.Fatalf("output is not a manifest: %v\n%s", err, res.stdout)
	}
	if m.Name != "dotnet-test" {
		t.Errorf("Name = %q, want %q", m.Name, "dotnet-test")
	}
	if _, ok := m.Inputs[string(action.InputFilter)]; !ok {
		t.Errorf("Inputs = %v, want filter", m.Inputs)
	}
	if m.Runs.Main != "dotnet-cast" {
		t.Errorf("Runs.Main = %q, want %q", m.Runs.Main, "dotnet-cast")
	}
}

func TestDescribe_UnknownAction(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "describe", "deploy")
	if !errors.Is(res.err, action.ErrInvalidKind) {
		t.Fatalf("error = %v, want ErrInvalidKind", res.err)
	}
	var ae *issue.ActionableError
	if !errors.As(res.err, &ae) || ae.IssueID != issue.UnknownActionId {
		t.Errorf("error = %v, want UnknownActionId", res.err)
	}
}

func TestDescribe_UnknownFormat(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "describe", "build", "--format", "json")
	if res.err == nil || !strings.Contains(res.err.Error(), "unsupported format") {
		t.Errorf("error = %v, want unsupported format", res.err)
	}
}

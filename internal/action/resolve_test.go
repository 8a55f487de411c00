// SPDX-License-Identifier: MPL-2.0

package action

import (
	"errors"
	"testing"

	"github.com/invowk/dotnet-cast/internal/env"
)

func mustLookup(t *testing.T, kind Kind) Declaration {
	t.Helper()
	d, err := Lookup(kind)
	if err != nil {
		t.Fatalf("Lookup(%s) error: %v", kind, err)
	}
	return d
}

func TestConfigurationDefaultFollowsCI(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			decl := mustLookup(t, kind)

			local := Resolve(decl, env.New(nil), false)
			if got := local.String(InputConfiguration); got != ConfigurationDebug {
				t.Errorf("configuration outside CI = %q, want %q", got, ConfigurationDebug)
			}

			inCI := Resolve(decl, env.New(nil), true)
			if got := inCI.String(InputConfiguration); got != ConfigurationRelease {
				t.Errorf("configuration in CI = %q, want %q", got, ConfigurationRelease)
			}
		})
	}
}

func TestConfigurationOverride(t *testing.T) {
	t.Parallel()

	decl := mustLookup(t, KindBuild)
	tests := []struct {
		name       string
		vars       map[string]string
		ci         bool
		want       string
		wantSource Source
	}{
		{name: "ci var wins over plain", vars: map[string]string{"INPUT_CONFIGURATION": "Staging", "CONFIGURATION": "Other"}, want: "Staging", wantSource: SourceCIVar},
		{name: "plain used when ci var empty", vars: map[string]string{"INPUT_CONFIGURATION": "", "CONFIGURATION": "Other"}, ci: true, want: "Other", wantSource: SourcePlainVar},
		{name: "override beats CI default", vars: map[string]string{"INPUT_CONFIGURATION": "Debug"}, ci: true, want: "Debug", wantSource: SourceCIVar},
		{name: "empty everywhere falls back", vars: map[string]string{"INPUT_CONFIGURATION": "", "CONFIGURATION": ""}, ci: true, want: "Release", wantSource: SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := Resolve(decl, env.New(tt.vars), tt.ci)
			v, ok := in.Value(InputConfiguration)
			if !ok {
				t.Fatal("configuration not resolved")
			}
			if v.Str != tt.want {
				t.Errorf("configuration = %q, want %q", v.Str, tt.want)
			}
			if v.Source != tt.wantSource {
				t.Errorf("source = %s, want %s", v.Source, tt.wantSource)
			}
		})
	}
}

func TestNoRestoreTruthTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ci            bool
		vars          map[string]string
		wantNoRestore bool
	}{
		{name: "local default restores", ci: false, wantNoRestore: false},
		{name: "CI default skips restore", ci: true, wantNoRestore: true},
		{name: "empty override ignored outside CI", ci: false, vars: map[string]string{"INPUT_NO_RESTORE": ""}, wantNoRestore: false},
		{name: "empty override ignored in CI", ci: true, vars: map[string]string{"INPUT_NO_RESTORE": ""}, wantNoRestore: true},
		{name: "explicit true outside CI", ci: false, vars: map[string]string{"INPUT_NO_RESTORE": "true"}, wantNoRestore: true},
		{name: "explicit false in CI", ci: true, vars: map[string]string{"INPUT_NO_RESTORE": "false"}, wantNoRestore: false},
		{name: "non-literal true in CI", ci: true, vars: map[string]string{"INPUT_NO_RESTORE": "True"}, wantNoRestore: false},
		{name: "plain var override", ci: true, vars: map[string]string{"NO_RESTORE": "false"}, wantNoRestore: false},
		{name: "ci var beats plain var", ci: false, vars: map[string]string{"INPUT_NO_RESTORE": "true", "NO_RESTORE": "false"}, wantNoRestore: true},
	}

	for _, kind := range []Kind{KindBuild, KindPublish, KindTest, KindPack} {
		for _, tt := range tests {
			t.Run(string(kind)+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				in := Resolve(mustLookup(t, kind), env.New(tt.vars), tt.ci)
				if got := in.Bool(InputNoRestore); got != tt.wantNoRestore {
					t.Errorf("no-restore = %v, want %v", got, tt.wantNoRestore)
				}
			})
		}
	}
}

func TestNoBuildDefaultsOff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ci   bool
		vars map[string]string
		want bool
	}{
		{name: "off outside CI", ci: false, want: false},
		{name: "off in CI", ci: true, want: false},
		{name: "explicit true", ci: false, vars: map[string]string{"INPUT_NO_BUILD": "true"}, want: true},
		{name: "plain true", ci: true, vars: map[string]string{"NO_BUILD": "true"}, want: true},
		{name: "explicit false", ci: true, vars: map[string]string{"INPUT_NO_BUILD": "false"}, want: false},
		{name: "non-literal value", ci: true, vars: map[string]string{"INPUT_NO_BUILD": "yes"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := Resolve(mustLookup(t, KindTest), env.New(tt.vars), tt.ci)
			if got := in.Bool(InputNoBuild); got != tt.want {
				t.Errorf("no-build = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectAndOptionalInputs(t *testing.T) {
	t.Parallel()

	in := Resolve(mustLookup(t, KindPublish), env.New(map[string]string{
		"PROJECT":       "src/app/app.csproj",
		"INPUT_RUNTIME": "linux-x64",
		"OUTPUT":        "",
	}), false)

	if got := in.String(InputProject); got != "src/app/app.csproj" {
		t.Errorf("project = %q", got)
	}
	if got := in.String(InputRuntime); got != "linux-x64" {
		t.Errorf("runtime = %q", got)
	}
	if got := in.String(InputOutput); got != "" {
		t.Errorf("output = %q, want empty", got)
	}

	defaults := Resolve(mustLookup(t, KindClean), env.New(nil), true)
	if got := defaults.String(InputProject); got != DefaultProject {
		t.Errorf("default project = %q, want %q", got, DefaultProject)
	}
}

func TestUndeclaredInputsAreIgnored(t *testing.T) {
	t.Parallel()

	in := Resolve(mustLookup(t, KindBuild), env.New(map[string]string{"INPUT_OUTPUT": "out"}), false)
	if _, ok := in.Value(InputOutput); ok {
		t.Error("build resolved an output input it does not declare")
	}
	if got := in.String(InputOutput); got != "" {
		t.Errorf("String(output) = %q, want empty", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	snap := env.New(map[string]string{"INPUT_FILTER": "Category=Unit", "LOGGER": "trx"})
	decl := mustLookup(t, KindTest)

	a := Resolve(decl, snap, true)
	b := Resolve(decl, snap, true)
	if !sameValues(a, b) {
		t.Error("two resolutions of the same snapshot differ")
	}
	if sameValues(a, Resolve(decl, snap, false)) {
		t.Error("resolutions under different CI contexts compare equal")
	}
}

func TestNamesFollowDeclarationOrder(t *testing.T) {
	t.Parallel()

	in := Resolve(mustLookup(t, KindTest), env.New(nil), false)
	want := []InputName{InputConfiguration, InputProject, InputNoRestore, InputNoBuild, InputFilter, InputLogger}
	got := in.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func sameValues(a, b Inputs) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	for _, name := range a.Names() {
		va, _ := a.Value(name)
		vb, ok := b.Value(name)
		if !ok || va != vb {
			return false
		}
	}
	return true
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = (%q, %v)", k, got, err)
		}
	}

	_, err := ParseKind("restore")
	if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ParseKind(restore) error = %v, want ErrInvalidKind", err)
	}
	if _, err := Lookup(Kind("restore")); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Lookup(restore) error = %v, want ErrInvalidKind", err)
	}
}

func TestInputVarNames(t *testing.T) {
	t.Parallel()

	if got := InputNoRestore.CIVar(); got != "INPUT_NO_RESTORE" {
		t.Errorf("CIVar() = %q", got)
	}
	if got := InputConfiguration.PlainVar(); got != "CONFIGURATION" {
		t.Errorf("PlainVar() = %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package action

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

// ManifestRunner is the runs.using value of generated manifests.
const ManifestRunner = "native"

type (
	// Manifest describes an action in the cast task manifest layout
	// (name, description, inputs, runs), so the action can be published as a
	// remote task.
	Manifest struct {
		Name        string                   `yaml:"name"`
		Description string                   `yaml:"description,omitempty"`
		Inputs      map[string]ManifestInput `yaml:"inputs,omitempty"`
		Runs        ManifestRuns             `yaml:"runs"`
	}

	// ManifestInput is one input entry of a Manifest.
	ManifestInput struct {
		Description string `yaml:"description,omitempty"`
		Default     string `yaml:"default,omitempty"`
		Required    bool   `yaml:"required,omitempty"`
	}

	// ManifestRuns tells a task host how to invoke the action.
	ManifestRuns struct {
		Using string   `yaml:"using"`
		Main  string   `yaml:"main,omitempty"`
		Args  []string `yaml:"args,omitempty"`
	}
)

// NewManifest builds the manifest of decl. binary is the executable a task
// host should run.
func NewManifest(decl Declaration, binary string) Manifest {
	inputs := make(map[string]ManifestInput, len(decl.Inputs))
	for _, spec := range decl.Inputs {
		inputs[string(spec.Name)] = ManifestInput{
			Description: spec.Description,
			Default:     manifestDefault(spec.Policy),
			Required:    spec.Required,
		}
	}
	return Manifest{
		Name:        "dotnet-" + string(decl.Kind),
		Description: decl.Description,
		Inputs:      inputs,
		Runs: ManifestRuns{
			Using: ManifestRunner,
			Main:  binary,
			Args:  []string{string(decl.Kind)},
		},
	}
}

// YAML encodes the manifest.
func (m Manifest) YAML() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest %s: %w", m.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode manifest %s: %w", m.Name, err)
	}
	return []byte(sb.String()), nil
}

// manifestDefault reports the default a task host would see outside CI.
// CI-dependent defaults are spelled out in the input description instead.
func manifestDefault(p Policy) string {
	if p.IsBool() {
		return ""
	}
	return p.StringDefault(false)
}

// Markdown returns a markdown reference for decl: its description and an
// input table listing both variable names.
func Markdown(decl Declaration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# dotnet %s\n\n%s\n\n", decl.Kind, decl.Description)
	sb.WriteString("| Input | CI variable | Plain variable | Default | Description |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, spec := range decl.Inputs {
		fmt.Fprintf(&sb, "| %s | `%s` | `%s` | %s | %s |\n",
			spec.Name, spec.Name.CIVar(), spec.Name.PlainVar(), markdownDefault(spec.Policy), spec.Description)
	}
	return sb.String()
}

// RenderMarkdown renders the markdown reference of decl for a terminal.
// style is a glamour style name such as "dark", "light" or "notty".
func RenderMarkdown(decl Declaration, style string) (string, error) {
	out, err := glamour.Render(Markdown(decl), style)
	if err != nil {
		return "", fmt.Errorf("failed to render %s reference: %w", decl.Kind, err)
	}
	return out, nil
}

func markdownDefault(p Policy) string {
	switch p.Kind() {
	case PolicyCIConditional:
		return fmt.Sprintf("`%s` (CI) / `%s`", p.StringDefault(true), p.StringDefault(false))
	case PolicyDependentBool:
		if p.BoolDefault(true) {
			return "`true` (CI) / `false`"
		}
		return "`false`"
	default:
		if d := p.StringDefault(false); d != "" {
			return "`" + d + "`"
		}
		return "-"
	}
}

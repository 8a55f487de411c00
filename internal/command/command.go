// SPDX-License-Identifier: MPL-2.0

// Package command turns resolved action inputs into the argument vector of a
// dotnet invocation.
//
// The vector always starts with the program, the verb, the project and the
// configuration pair. The remaining flags follow a fixed per-action order, so
// equal inputs always give byte-identical vectors.
package command

import (
	"slices"
	"strconv"
	"strings"

	"github.com/invowk/dotnet-cast/internal/action"

	"mvdan.cc/sh/v3/syntax"
)

// DefaultProgram is the toolchain executable.
const DefaultProgram = "dotnet"

// ConfigurationFlag precedes the configuration value.
const ConfigurationFlag = "-c"

type (
	// Spec is the ordered token sequence of a toolchain invocation.
	// Spec[0] is the program.
	Spec []string

	// flagRule maps an input to the flag it produces. A toggle rule emits the
	// bare flag when the input is on; a value rule emits the flag and the
	// value when the value is non-empty.
	flagRule struct {
		input  action.InputName
		flag   string
		toggle bool
	}
)

// flagOrder lists the optional flags of each action, in emission order.
var flagOrder = map[action.Kind][]flagRule{
	action.KindBuild: {
		{input: action.InputNoRestore, flag: "--no-restore", toggle: true},
	},
	action.KindClean: {
		{input: action.InputOutput, flag: "-o"},
	},
	action.KindPublish: {
		{input: action.InputNoRestore, flag: "--no-restore", toggle: true},
		{input: action.InputNoBuild, flag: "--no-build", toggle: true},
		{input: action.InputOutput, flag: "-o"},
		{input: action.InputRuntime, flag: "-r"},
	},
	action.KindTest: {
		{input: action.InputNoRestore, flag: "--no-restore", toggle: true},
		{input: action.InputNoBuild, flag: "--no-build", toggle: true},
		{input: action.InputFilter, flag: "--filter"},
		{input: action.InputLogger, flag: "--logger"},
	},
	action.KindPack: {
		{input: action.InputNoRestore, flag: "--no-restore", toggle: true},
		{input: action.InputNoBuild, flag: "--no-build", toggle: true},
		{input: action.InputOutput, flag: "-o"},
	},
}

// Build assembles the dotnet invocation for kind from in.
func Build(kind action.Kind, in action.Inputs) Spec {
	return BuildWith(DefaultProgram, kind, in)
}

// BuildWith is Build with an explicit program, e.g. a pinned dotnet path.
// An empty program falls back to DefaultProgram.
func BuildWith(program string, kind action.Kind, in action.Inputs) Spec {
	if program == "" {
		program = DefaultProgram
	}

	project := in.String(action.InputProject)
	if project == "" {
		project = action.DefaultProject
	}

	spec := Spec{program, kind.Verb(), project, ConfigurationFlag, in.String(action.InputConfiguration)}

	for _, rule := range flagOrder[kind] {
		if rule.toggle {
			if in.Bool(rule.input) {
				spec = append(spec, rule.flag)
			}
			continue
		}
		if v := in.String(rule.input); v != "" {
			spec = append(spec, rule.flag, v)
		}
	}
	return spec
}

// Program returns the executable, or "" for an empty spec.
func (s Spec) Program() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Args returns the arguments after the program.
func (s Spec) Args() []string {
	if len(s) < 2 {
		return nil
	}
	return slices.Clone(s[1:])
}

// String renders s as a single shell-quoted line. Tokens that need no
// quoting are written as is.
func (s Spec) String() string {
	quoted := make([]string, len(s))
	for i, tok := range s {
		q, err := syntax.Quote(tok, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(tok)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

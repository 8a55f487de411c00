// SPDX-License-Identifier: MPL-2.0

package action

import "strings"

// CIVarPrefix namespaces the variables a CI platform injects for action inputs.
const CIVarPrefix = "INPUT_"

// Input names shared by the dotnet actions.
const (
	InputConfiguration InputName = "configuration"
	InputProject       InputName = "project"
	InputNoRestore     InputName = "no-restore"
	InputNoBuild       InputName = "no-build"
	InputOutput        InputName = "output"
	InputRuntime       InputName = "runtime"
	InputFilter        InputName = "filter"
	InputLogger        InputName = "logger"
)

// Default policy kinds.
const (
	// PolicyLiteral resolves to a fixed default.
	PolicyLiteral PolicyKind = iota + 1
	// PolicyCIConditional resolves to one default under CI and another outside it.
	PolicyCIConditional
	// PolicyDependentBool is an on/off switch whose default depends on the CI context.
	PolicyDependentBool
)

// Dependent boolean defaults.
const (
	// BoolOff defaults the switch to off regardless of CI.
	BoolOff BoolDefault = iota
	// BoolOnInCI defaults the switch to on under CI and off otherwise.
	BoolOnInCI
)

type (
	// InputName is the kebab-case name of an action input.
	InputName string

	// PolicyKind tags the variant held by a Policy.
	PolicyKind int

	// BoolDefault selects how a dependent boolean defaults when not overridden.
	BoolDefault int

	// Policy is the default policy of an input. It is a tagged union; only the
	// fields of the variant named by Kind are meaningful.
	Policy struct {
		kind      PolicyKind
		literal   string
		inCI      string
		outsideCI string
		boolDef   BoolDefault
	}

	// InputSpec declares one input of an action.
	InputSpec struct {
		Name        InputName
		Description string
		Policy      Policy
		// Required marks inputs a caller is expected to set. Resolution still
		// falls back to the default; this only feeds generated manifests.
		Required bool
	}
)

// CIVar returns the CI-namespaced variable name, e.g. INPUT_NO_RESTORE.
func (n InputName) CIVar() string { return CIVarPrefix + n.PlainVar() }

// PlainVar returns the plain variable name, e.g. NO_RESTORE.
func (n InputName) PlainVar() string {
	return strings.ToUpper(strings.ReplaceAll(string(n), "-", "_"))
}

// String returns the input name.
func (n InputName) String() string { return string(n) }

// Literal returns a policy with a fixed default. An empty value means the
// input is omitted when not set.
func Literal(v string) Policy {
	return Policy{kind: PolicyLiteral, literal: v}
}

// CIConditional returns a policy defaulting to inCI under CI and outsideCI otherwise.
func CIConditional(inCI, outsideCI string) Policy {
	return Policy{kind: PolicyCIConditional, inCI: inCI, outsideCI: outsideCI}
}

// DependentBool returns an on/off switch policy. An explicit override turns the
// switch on exactly when it equals "true"; otherwise def decides.
func DependentBool(def BoolDefault) Policy {
	return Policy{kind: PolicyDependentBool, boolDef: def}
}

// Kind returns the policy variant.
func (p Policy) Kind() PolicyKind { return p.kind }

// IsBool reports whether the policy resolves to a boolean.
func (p Policy) IsBool() bool { return p.kind == PolicyDependentBool }

// StringDefault returns the string default for the given CI context.
// It is empty for boolean policies.
func (p Policy) StringDefault(ci bool) string {
	switch p.kind {
	case PolicyLiteral:
		return p.literal
	case PolicyCIConditional:
		if ci {
			return p.inCI
		}
		return p.outsideCI
	default:
		return ""
	}
}

// BoolDefault returns the boolean default for the given CI context.
func (p Policy) BoolDefault(ci bool) bool {
	if p.kind != PolicyDependentBool {
		return false
	}
	switch p.boolDef {
	case BoolOnInCI:
		return ci
	default:
		return false
	}
}

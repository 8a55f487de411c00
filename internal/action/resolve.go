// SPDX-License-Identifier: MPL-2.0

package action

import (
	"github.com/invowk/dotnet-cast/internal/env"
)

// Value sources.
const (
	// SourceDefault means the default policy supplied the value.
	SourceDefault Source = iota
	// SourceCIVar means the INPUT_-prefixed variable supplied the value.
	SourceCIVar
	// SourcePlainVar means the plain variable supplied the value.
	SourcePlainVar
)

type (
	// Source records where a resolved value came from.
	Source int

	// Value is one resolved input. Exactly one of Str or Bool is meaningful,
	// as selected by IsBool.
	Value struct {
		Str    string
		Bool   bool
		IsBool bool
		Source Source
	}

	// Inputs is the resolved input record of one action run. Every declared
	// input has exactly one value.
	Inputs struct {
		decl   Declaration
		ci     bool
		values map[InputName]Value
	}
)

// String returns the source name used in logs.
func (s Source) String() string {
	switch s {
	case SourceCIVar:
		return "ci-var"
	case SourcePlainVar:
		return "plain-var"
	default:
		return "default"
	}
}

// Resolve applies the fallback chain to every input of decl.
func Resolve(decl Declaration, snap env.Snapshot, ci bool) Inputs {
	values := make(map[InputName]Value, len(decl.Inputs))
	for _, spec := range decl.Inputs {
		values[spec.Name] = resolveInput(spec, snap, ci)
	}
	return Inputs{decl: decl, ci: ci, values: values}
}

func resolveInput(spec InputSpec, snap env.Snapshot, ci bool) Value {
	ciVar, plainVar := spec.Name.CIVar(), spec.Name.PlainVar()
	source := inputSource(snap, ciVar, plainVar)

	if spec.Policy.IsBool() {
		if source == SourceDefault {
			return Value{Bool: spec.Policy.BoolDefault(ci), IsBool: true, Source: source}
		}
		raw := snap.ResolveWithFallback(ciVar, plainVar, "")
		return Value{Bool: raw == env.TrueValue, IsBool: true, Source: source}
	}

	return Value{
		Str:    snap.ResolveWithFallback(ciVar, plainVar, spec.Policy.StringDefault(ci)),
		Source: source,
	}
}

// inputSource reports which variable, if any, overrides an input.
func inputSource(snap env.Snapshot, ciVar, plainVar string) Source {
	_, from, ok := snap.FirstSet(ciVar, plainVar)
	switch {
	case !ok:
		return SourceDefault
	case from == ciVar:
		return SourceCIVar
	default:
		return SourcePlainVar
	}
}

// Kind returns the action kind the inputs were resolved for.
func (in Inputs) Kind() Kind { return in.decl.Kind }

// CI returns the CI decision the inputs were resolved under.
func (in Inputs) CI() bool { return in.ci }

// Value returns the resolved value of name.
func (in Inputs) Value(name InputName) (Value, bool) {
	v, ok := in.values[name]
	return v, ok
}

// String returns the string value of name, or "" when undeclared or boolean.
func (in Inputs) String(name InputName) string {
	v := in.values[name]
	if v.IsBool {
		return ""
	}
	return v.Str
}

// Bool returns the boolean value of name, or false when undeclared or a string.
func (in Inputs) Bool(name InputName) bool {
	v := in.values[name]
	return v.IsBool && v.Bool
}

// Names returns the declared input names in declaration order.
func (in Inputs) Names() []InputName {
	names := make([]InputName, len(in.decl.Inputs))
	for i, spec := range in.decl.Inputs {
		names[i] = spec.Name
	}
	return names
}

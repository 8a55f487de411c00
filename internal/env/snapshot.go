// SPDX-License-Identifier: MPL-2.0

package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// TrueValue is the only string a boolean environment variable may hold to be
// read as true. The comparison is exact and case-sensitive.
const TrueValue = "true"

// Snapshot is a read-only view of environment variables captured at one point
// in time. The zero value is an empty snapshot.
type Snapshot struct {
	vars map[string]string
}

// New creates a snapshot from a map. The map is copied.
func New(vars map[string]string) Snapshot {
	return Snapshot{vars: maps.Clone(vars)}
}

// FromEnviron creates a snapshot from "KEY=VALUE" pairs as returned by os.Environ.
// Entries without a separator are kept with an empty value. When a key repeats,
// the last entry wins.
func FromEnviron(environ []string) Snapshot {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return Snapshot{vars: vars}
}

// FromOS captures the current process environment.
func FromOS() Snapshot {
	return FromEnviron(os.Environ())
}

// LookupRaw returns the value of name and whether it is set at all.
// An empty value is reported as present.
func (s Snapshot) LookupRaw(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Lookup returns the value of name, treating an empty value as not set.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ResolveWithFallback returns the value of primary if it is set and non-empty,
// else the value of secondary if it is set and non-empty, else def.
func (s Snapshot) ResolveWithFallback(primary, secondary, def string) string {
	if v, ok := s.Lookup(primary); ok {
		return v
	}
	if v, ok := s.Lookup(secondary); ok {
		return v
	}
	return def
}

// FirstSet returns the first non-empty value among names, the name it came
// from, and whether any was found.
func (s Snapshot) FirstSet(names ...string) (value, from string, ok bool) {
	for _, name := range names {
		if v, found := s.Lookup(name); found {
			return v, name, true
		}
	}
	return "", "", false
}

// IsTrue reports whether name holds exactly TrueValue.
func (s Snapshot) IsTrue(name string) bool {
	return s.vars[name] == TrueValue
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// With returns a new snapshot with the given variables set on top of s.
func (s Snapshot) With(vars map[string]string) Snapshot {
	merged := make(map[string]string, len(s.vars)+len(vars))
	maps.Copy(merged, s.vars)
	maps.Copy(merged, vars)
	return Snapshot{vars: merged}
}

// Environ returns the snapshot as sorted "KEY=VALUE" pairs, suitable for
// exec.Cmd.Env.
func (s Snapshot) Environ() []string {
	keys := slices.Sorted(maps.Keys(s.vars))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+s.vars[k])
	}
	return result
}

// SPDX-License-Identifier: MPL-2.0

// Package env wraps process environment access behind an immutable Snapshot.
//
// A Snapshot is taken once per action run. All input resolution reads from it,
// which lets tests inject a synthetic environment instead of mutating the real
// process state. Lookups come in two flavors:
//   - LookupRaw distinguishes an empty value from an absent one
//   - Lookup and ResolveWithFallback treat an empty value as not set
//
// Dotenv files can be layered on top of a snapshot with WithDotenv; the
// overlay always produces a new Snapshot and never touches the original.
package env

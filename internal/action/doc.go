// SPDX-License-Identifier: MPL-2.0

// Package action declares the inputs of each dotnet lifecycle action and
// resolves them against an environment snapshot.
//
// Every input is looked up the same way: the CI-namespaced variable
// (INPUT_<NAME>) first, the plain variable (<NAME>) second, and the input's
// default policy last. A default policy is one of:
//   - literal: a fixed value, often empty meaning "omit the flag"
//   - CI-conditional: one value under CI, another outside it
//   - dependent boolean: an on/off switch whose default follows the CI context
//
// Resolution never fails. Declarations are static tables; Resolve is a pure
// function of a declaration, a snapshot and the CI decision.
package action

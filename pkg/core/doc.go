// Package core defines the shared language of the tacloc system.
//
// This package contains:
//   - Occurrence, the set of term occurrences a tactic acts on
//   - Location, the closed set of tactic targets (goal, hypotheses, both)
//   - Target, a hypothesis name paired with its occurrences
//
// All values are immutable once constructed: constructors copy the slices
// they are given and accessors return copies.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core

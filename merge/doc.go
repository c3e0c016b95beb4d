// Package merge reshapes runtime values along a merger tree so the
// normalized pattern can bind them structurally.
//
// The Merger sum type mirrors the pattern's collection structure:
// Passthrough uses the value as received, Default substitutes on absence,
// ModeTagged reconciles a collection under loose or rigid discipline, and
// HeadTail splits a sequence. Loose reconciliation converts any collection
// kind through the ordered-pair-sequence intermediate; rigid
// reconciliation requires exact kind and arity agreement and never
// coerces. A present right-hand value always wins over a declared default;
// only absence substitutes, and missing mandatory positions travel as the
// Absent sentinel for the binder to report.
package merge

// Package types defines the shared data model of the selection engine:
// complexity levels, worker tiers and capabilities, typed context values,
// analysis and result records, and the unified error type.
//
// The types package is the lowest-level package with no internal
// dependencies, so every other package may import it without cycles.
package types

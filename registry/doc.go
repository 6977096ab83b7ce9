// Package registry provides explicit, table-driven replacements for runtime
// reflection.
//
// Registry maps type identifiers to factory closures so callers can construct
// default instances of a named type without reflection: dynamic dispatch
// becomes an explicit table populated at startup. Metadata is the companion
// table for static type annotations: a name is tagged with a note once and
// queried later, replacing runtime annotation scanning for a type set that is
// fixed at build time.
package registry

// Package shape models a closed set of geometric variants as a tagged union.
//
// Shape is a value type carrying a Kind tag; the set of kinds is fixed at
// compile time and every consumer switches exhaustively over it. This is the
// Go rendition of a sealed variant hierarchy: no open interface, no
// third-party kinds.
package shape

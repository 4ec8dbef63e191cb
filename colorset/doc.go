// Package colorset implements a fixed-width set of color indices backed by
// a single 64-bit word.
//
// The exact coloring engine never branches on color indices at or above
// MaxColors (63), which keeps every per-vertex "forbidden colors" record,
// every saturation count, and every bound computation inside one machine
// word. All operations are constant-time.
//
// A Set is a value type; copying it copies the set. Union, intersection and
// complement-within-mask are expressed with the ordinary bit operators:
//
//	both   := a & b               // intersection
//	either := a | b               // union
//	open   := Mask(ub) &^ a       // colors < ub not present in a
//
// Iterating the members of a set:
//
//	for s != 0 {
//	    c := s.Lowest()
//	    s.Del(c)
//	    // use color c
//	}
package colorset

// Package linkrange finds the maximal span of text carrying one attribute
// value around a position.
//
// A document is seen as a Sequence of runs. Given a position and an
// attribute key, Resolve picks an anchor run next to the position and grows
// the span run by run in both directions while the value stays strictly
// equal:
//
//	"ab" "cde"{linkHref=url} "fg"
//	       ^ Resolve(At(3), "linkHref") = [2:5) url
//
// Anchor Selection:
//
// Inside a run both neighbours are the same run. At a boundary the run on the
// position's gravity side is tried first, then the other side. If neither
// carries the key nothing is found. ResolveValue anchors only on a neighbour
// whose value equals the requested one, which lets a caller re-resolve a
// specific link after the caret has moved to its edge.
//
// Cost:
//
// Locating the anchor is delegated to the Sequence (the model locates runs by
// binary search over prefix offsets). Only runs in the result plus the two
// terminating neighbours are visited.
package linkrange

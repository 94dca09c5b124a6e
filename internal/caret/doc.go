// Package caret implements two-step caret movement at the end of an
// attributed range.
//
// With two-step movement a caret leaving a link to the right stops once at
// the link's trailing edge before it leaves. While it sits there typed text
// still belongs to the link for highlighting and commands, but a second
// rightward step (or typing) moves it out, and typed text no longer
// extends the link.
//
// # States
//
//   - Outside: the caret is not in the range, the selection is expanded, or
//     the document is empty
//   - Inside: the caret is strictly inside a run carrying the key, or between
//     two runs with the same value
//   - AtTrailingBoundary: the caret reached the range end by moving right from
//     inside the same range
//
// Leaving to the left takes one step: at the leading boundary the caret is
// always Outside.
//
// # Integration
//
// Attach registers three callbacks on the host:
//
//   - a post-fixer that recomputes the state once per transaction from the
//     selection before and after it, and writes the selection inheritance
//     override for the key
//   - a step hook that consumes the first rightward step at the trailing
//     boundary
//   - an insert hook that strips the key from text typed at the trailing
//     boundary
//
// The disposer returned by Attach unregisters all three and clears the
// override. A TwoStep is tied to one document and, like the document, is not
// safe for concurrent use.
package caret

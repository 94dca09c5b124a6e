// Package model provides the in-memory document host the link feature runs
// against.
//
// The model is a flat, ordered sequence of text runs. Each run carries an
// attribute map whose values are scalars (strings, booleans, numbers). Block
// structure is flattened by the host before it reaches this layer, so there
// is no tree: positions are rune offsets on a single axis.
//
// # Positions and Gravity
//
// A Position sitting exactly on a run boundary has a Gravity that decides
// which neighbouring run it belongs to for attribute inheritance:
//
//   - Backward: the run before the position (the default; typing after a
//     link extends it)
//   - Forward: the run after the position
//
// # Transactions
//
// Every mutation happens inside Document.Change. Writes made through the
// Writer are visible immediately to the callback. When the outermost Change
// returns without error, post-fixers run once, in priority order, and may
// write further changes into the same batch. Change listeners then receive
// the finished Batch exactly once:
//
//	doc := model.NewDocument(
//	    model.Plain("see "),
//	    model.Attributed("docs", model.Attributes{"linkHref": "https://go.dev"}),
//	)
//
//	err := doc.Change(func(w *model.Writer) error {
//	    if err := w.SetSelection(model.Collapsed(6)); err != nil {
//	        return err
//	    }
//	    _, err := w.InsertText("!")
//	    return err
//	})
//
// Nested Change calls join the outer transaction. A callback error rolls the
// document back to its state at transaction start and suppresses every
// notification.
//
// # Interception
//
// Step and insert hooks run before the corresponding write and may alter it:
// a step hook can consume a caret step, an insert hook can change the
// attributes applied to typed text. Both are what the two-step caret needs.
//
// # Thread Safety
//
// A Document belongs to a single editing session and is not safe for
// concurrent use.
package model

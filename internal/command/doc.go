// Package command provides the link and unlink editing commands.
//
// A Command exposes an enabled flag and a value that track the document
// selection. Both are recomputed by Refresh, which every command runs from a
// low-priority change listener after the caret and highlight have settled.
//
//	reg := command.NewRegistry()
//	reg.Add(command.NewLink(doc, decorators))
//	reg.Add(command.NewUnlink(doc, decorators))
//
//	err := reg.Execute("link", "https://example.com", map[string]bool{"downloadable": true})
//
// Each execution runs in a single document transaction.
package command

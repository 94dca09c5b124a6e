// Package plugin hosts editor features on a document.
//
// An Editor owns one document, a command registry and a decorator registry.
// Plugins are initialised in the order they are added and destroyed in
// reverse:
//
//	ed := plugin.NewEditor(doc, plugin.WithDecorators(reg))
//	if err := ed.Use(plugin.NewLinkEditing()); err != nil {
//	    return err
//	}
//	defer ed.Destroy()
//
//	ed.Execute("link", "https://example.com")
//
// # LinkEditing
//
// LinkEditing attaches the two-step caret and the boundary highlight for the
// linkHref attribute and registers the link and unlink commands.
package plugin

package plugin

import (
	"github.com/dshills/keylink/internal/caret"
	"github.com/dshills/keylink/internal/command"
	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/highlight"
)

// LinkEditingName is the name LinkEditing registers under.
const LinkEditingName = "LinkEditing"

// LinkEditing wires link editing into an editor.
type LinkEditing struct {
	caret     *caret.TwoStep
	highlight *highlight.Maintainer
	link      *command.Link
	unlink    *command.Unlink

	editor   *Editor
	disposes []func()
}

// NewLinkEditing creates the plugin.
func NewLinkEditing() *LinkEditing {
	return &LinkEditing{}
}

// Name returns LinkEditingName.
func (p *LinkEditing) Name() string {
	return LinkEditingName
}

// Init attaches the caret and highlight and registers the link commands.
// The caret post-fixer runs before the highlight so the highlight sees the
// settled selection attributes.
func (p *LinkEditing) Init(e *Editor) error {
	doc := e.Document()
	p.editor = e

	var dispose func()
	p.caret, dispose = caret.Attach(doc, decorator.HrefAttribute,
		caret.WithLogger(e.Logger()))
	p.disposes = append(p.disposes, dispose)

	p.highlight, dispose = highlight.Attach(doc, decorator.HrefAttribute,
		highlight.WithLogger(e.Logger()))
	p.disposes = append(p.disposes, dispose)

	p.link = command.NewLink(doc, e.Decorators())
	p.unlink = command.NewUnlink(doc, e.Decorators())
	p.disposes = append(p.disposes, p.link.Destroy, p.unlink.Destroy)

	if err := e.Commands().Add(p.link); err != nil {
		p.Destroy()
		return err
	}
	if err := e.Commands().Add(p.unlink); err != nil {
		p.Destroy()
		return err
	}
	return nil
}

// Caret returns the attached two-step caret.
func (p *LinkEditing) Caret() *caret.TwoStep {
	return p.caret
}

// Highlight returns the attached boundary highlight.
func (p *LinkEditing) Highlight() *highlight.Maintainer {
	return p.highlight
}

// Destroy unregisters commands and detaches the caret and highlight.
func (p *LinkEditing) Destroy() {
	if p.editor != nil {
		for _, cmd := range []command.Command{p.link, p.unlink} {
			if registered, ok := p.editor.Commands().Get(cmd.Name()); ok && registered == cmd {
				p.editor.Commands().Remove(cmd.Name())
			}
		}
	}
	for i := len(p.disposes) - 1; i >= 0; i-- {
		p.disposes[i]()
	}
	p.disposes = nil
}

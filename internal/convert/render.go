package convert

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/model"
)

// Render writes runs as HTML paragraphs to w.
func (c *Converter) Render(w io.Writer, runs []model.Run) error {
	if c.minifier == nil {
		return c.render(w, runs)
	}

	var buf bytes.Buffer
	if err := c.render(&buf, runs); err != nil {
		return err
	}
	if err := c.minifier.Minify(htmlMediaType, w, &buf); err != nil {
		return fmt.Errorf("minify html: %w", err)
	}
	return nil
}

func (c *Converter) render(w io.Writer, runs []model.Run) error {
	for _, line := range splitLines(runs) {
		p := element(atom.P)
		c.renderLine(p, line)
		if err := html.Render(w, p); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// RenderString returns runs as HTML.
func (c *Converter) RenderString(runs []model.Run) (string, error) {
	var b strings.Builder
	if err := c.Render(&b, runs); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Converter) renderLine(parent *html.Node, line []model.Run) {
	for i := 0; i < len(line); {
		href, ok := line[i].Attr(decorator.HrefAttribute)
		url, isString := href.(string)
		if !ok || !isString {
			parent.AppendChild(styled(line[i]))
			i++
			continue
		}

		key := c.linkKey(line[i])
		a := c.anchor(url, line[i])
		for ; i < len(line) && c.linkKey(line[i]) == key; i++ {
			a.AppendChild(styled(line[i]))
		}
		parent.AppendChild(a)
	}
}

// linkKey identifies the <a> a run belongs to; empty for unlinked runs.
func (c *Converter) linkKey(r model.Run) string {
	href, ok := r.Attr(decorator.HrefAttribute)
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", href)
	for _, e := range c.decorators.Manual() {
		if enabled(r, e.Attribute) {
			b.WriteByte('\x00')
			b.WriteString(e.Attribute)
		}
	}
	return b.String()
}

func (c *Converter) anchor(url string, r model.Run) *html.Node {
	href := url
	if c.safeURLs {
		href = SafeURL(url)
	}
	a := element(atom.A)
	a.Attr = append(a.Attr, html.Attribute{Key: "href", Val: href})

	attrs := c.decorators.HTMLAttributes(url, func(attr string) bool {
		return enabled(r, attr)
	})
	for _, k := range decorator.SortedKeys(attrs) {
		a.Attr = append(a.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	return a
}

func enabled(r model.Run, attr string) bool {
	v, ok := r.Attr(attr)
	return ok && v == true
}

// styled returns the text of r wrapped in its style elements.
func styled(r model.Run) *html.Node {
	n := &html.Node{Type: html.TextNode, Data: r.Text}
	if r.HasAttr(ItalicAttribute) {
		n = wrap(atom.I, n)
	}
	if r.HasAttr(BoldAttribute) {
		n = wrap(atom.Strong, n)
	}
	return n
}

func wrap(a atom.Atom, child *html.Node) *html.Node {
	n := element(a)
	n.AppendChild(child)
	return n
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// splitLines splits runs at "\n". Empty lines are kept.
func splitLines(runs []model.Run) [][]model.Run {
	lines := [][]model.Run{nil}
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], model.Run{Text: part, Attrs: r.Attrs})
			}
		}
	}
	return lines
}

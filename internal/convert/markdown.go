package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"

	"github.com/dshills/keylink/internal/model"
)

// ParseMarkdown converts Markdown to HTML and parses the result. Bare URLs
// become links.
func (c *Converter) ParseMarkdown(r io.Reader) ([]model.Run, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	// A parser is single use.
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.Autolink)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.FlagsNone})
	out := markdown.ToHTML(src, p, renderer)
	c.logger.Debug("markdown converted", "in", len(src), "out", len(out))

	return c.Parse(bytes.NewReader(out))
}

// ParseMarkdownString is ParseMarkdown for a string.
func (c *Converter) ParseMarkdownString(s string) ([]model.Run, error) {
	return c.ParseMarkdown(bytes.NewReader([]byte(s)))
}

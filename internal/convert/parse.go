package convert

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/model"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"blockquote": true, "pre": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Parse reads sanitised HTML from r and returns its runs.
func (c *Converter) Parse(r io.Reader) ([]model.Run, error) {
	clean := c.policy.SanitizeReader(r)
	root, err := html.Parse(clean)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := findElement(root, "body")
	if body == nil {
		return nil, nil
	}

	p := &parser{decorators: c.decorators}
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		p.walk(n, nil)
	}
	return trimTrailingNewlines(p.runs), nil
}

// ParseString parses an HTML fragment.
func (c *Converter) ParseString(s string) ([]model.Run, error) {
	return c.Parse(strings.NewReader(s))
}

type parser struct {
	decorators *decorator.Registry
	runs       []model.Run
}

func (p *parser) walk(n *html.Node, attrs model.Attributes) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n") {
			return
		}
		p.emit(n.Data, attrs)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.Data {
	case "a":
		attrs = p.linkAttributes(n, attrs)
	case "strong", "b":
		attrs = attrs.With(BoldAttribute, true)
	case "i", "em":
		attrs = attrs.With(ItalicAttribute, true)
	case "br":
		p.emit("\n", nil)
		return
	}

	block := blockElements[n.Data]
	if block {
		p.breakLine()
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		p.walk(child, attrs)
	}
	if block {
		p.breakLine()
	}
}

func (p *parser) linkAttributes(n *html.Node, attrs model.Attributes) model.Attributes {
	href := attrValue(n, "href")
	if href == "" {
		return attrs
	}
	attrs = attrs.With(decorator.HrefAttribute, href)

	have := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		have[a.Key] = a.Val
	}
	for _, attr := range p.decorators.MatchManual(have) {
		attrs = attrs.With(attr, true)
	}
	return attrs
}

func (p *parser) emit(text string, attrs model.Attributes) {
	if text == "" {
		return
	}
	p.runs = append(p.runs, model.NewRun(text, attrs))
}

// breakLine ends the current line unless the output is empty or already
// ends with one.
func (p *parser) breakLine() {
	if len(p.runs) == 0 {
		return
	}
	if strings.HasSuffix(p.runs[len(p.runs)-1].Text, "\n") {
		return
	}
	p.emit("\n", nil)
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// trimTrailingNewlines drops line breaks left after the last block.
func trimTrailingNewlines(runs []model.Run) []model.Run {
	for len(runs) > 0 {
		last := runs[len(runs)-1]
		trimmed := strings.TrimRight(last.Text, "\n")
		if trimmed == last.Text {
			break
		}
		if trimmed == "" {
			runs = runs[:len(runs)-1]
			continue
		}
		runs[len(runs)-1] = model.Run{Text: trimmed, Attrs: last.Attrs}
		break
	}
	return runs
}

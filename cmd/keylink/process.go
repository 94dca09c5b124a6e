package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/keylink/internal/config"
	"github.com/dshills/keylink/internal/convert"
	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/linkrange"
	"github.com/dshills/keylink/internal/model"
	"github.com/dshills/keylink/internal/plugin"
)

// processor converts one input document.
type processor struct {
	input    []byte
	markdown bool
	minify   bool
	links    bool
	logger   *slog.Logger
}

// Process parses the input with cfg's decorators, hosts it in an editor
// with link editing and writes the rendered HTML, optionally followed by
// the link list.
func (p *processor) Process(cfg *config.Config, w io.Writer) error {
	reg, err := cfg.Registry(decorator.WithLuaLogger(p.logger))
	if err != nil {
		return fmt.Errorf("build decorators: %w", err)
	}
	defer reg.Close()

	conv := convert.New(reg, convert.WithLogger(p.logger), convert.WithMinify(p.minify))
	parse := conv.Parse
	if p.markdown {
		parse = conv.ParseMarkdown
	}
	runs, err := parse(bytes.NewReader(p.input))
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	doc := model.NewDocument(runs, model.WithLogger(p.logger), model.WithReadOnly())
	ed := plugin.NewEditor(doc, plugin.WithDecorators(reg), plugin.WithLogger(p.logger))
	defer ed.Destroy()
	if err := ed.Use(plugin.NewLinkEditing()); err != nil {
		return err
	}
	p.logger.Debug("document loaded", "session", ed.ID().String(), "runs", doc.Len(), "size", doc.Size())

	if err := conv.Render(w, doc.Runs()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if p.links {
		return writeLinks(w, doc)
	}
	return nil
}

// writeLinks prints one line per link: range, href and text.
func writeLinks(w io.Writer, doc *model.Document) error {
	for _, r := range linkrange.All(doc, decorator.HrefAttribute) {
		text, err := doc.TextIn(r.Range)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%v\t%q\n", r.Range, r.Value, text); err != nil {
			return err
		}
	}
	return nil
}

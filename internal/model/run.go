package model

import (
	"fmt"
	"unicode/utf8"
)

// Run is an immutable piece of text with uniform attributes.
type Run struct {
	Text  string
	Attrs Attributes
}

// NewRun creates a run, copying attrs.
func NewRun(text string, attrs Attributes) Run {
	return Run{Text: text, Attrs: attrs.Clone()}
}

// Plain creates a run without attributes.
func Plain(text string) Run {
	return Run{Text: text}
}

// Attributed creates a run carrying attrs.
func Attributed(text string, attrs Attributes) Run {
	return NewRun(text, attrs)
}

// Len returns the run length in runes.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// Attr returns the value of the attribute key.
func (r Run) Attr(key string) (any, bool) {
	return r.Attrs.Get(key)
}

// HasAttr reports whether the run carries key.
func (r Run) HasAttr(key string) bool {
	return r.Attrs.Has(key)
}

// String returns a debug representation of the run.
func (r Run) String() string {
	if len(r.Attrs) == 0 {
		return fmt.Sprintf("%q", r.Text)
	}
	return fmt.Sprintf("%q%s", r.Text, r.Attrs)
}

// split returns the parts of r before and after the rune offset at.
func (r Run) split(at int) (Run, Run) {
	if at <= 0 {
		return Run{Attrs: r.Attrs}, r
	}
	i := 0
	for byteIdx := range r.Text {
		if i == at {
			return Run{Text: r.Text[:byteIdx], Attrs: r.Attrs}, Run{Text: r.Text[byteIdx:], Attrs: r.Attrs}
		}
		i++
	}
	return r, Run{Attrs: r.Attrs}
}

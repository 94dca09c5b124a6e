// Package highlight keeps a document marker over the attributed range the
// selection is in, so a view can draw the active link.
//
// The maintainer runs as a post-fixer after the caret (event.PriorityNormal
// by default), once per transaction. It writes the marker only when the
// resolved range differs from the marker already in the document, and
// removes it when the selection carries no value for the key.
package highlight

import (
	"log/slog"

	"github.com/dshills/keylink/internal/event"
	"github.com/dshills/keylink/internal/linkrange"
	"github.com/dshills/keylink/internal/model"
)

// DefaultMarker is the name of the marker written for links.
const DefaultMarker = "linkBoundaries"

// Host is the document surface the maintainer needs.
// *model.Document satisfies it.
type Host interface {
	linkrange.Sequence

	Selection() model.Selection
	SelectionAttribute(key string) (any, bool)
	Marker(name string) (model.Range, bool)
	Change(fn func(w *model.Writer) error) error
	RegisterPostFixer(fn model.PostFixer, priority event.Priority) event.Handle
}

// Option configures a Maintainer.
type Option func(*Maintainer)

// WithMarker sets the marker name. Default: DefaultMarker.
func WithMarker(name string) Option {
	return func(m *Maintainer) {
		m.marker = name
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Maintainer) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPriority sets the post-fixer priority.
func WithPriority(p event.Priority) Option {
	return func(m *Maintainer) {
		m.priority = p
	}
}

// Maintainer owns the highlight marker for one attribute key.
type Maintainer struct {
	host     Host
	key      string
	marker   string
	logger   *slog.Logger
	priority event.Priority

	current linkrange.Range
	active  bool
	updates int
	handle  event.Handle
}

// Attach starts maintaining the marker for key and syncs it with the
// current selection. The returned function stops it and removes the marker.
func Attach(host Host, key string, opts ...Option) (*Maintainer, func()) {
	m := &Maintainer{
		host:     host,
		key:      key,
		marker:   DefaultMarker,
		logger:   slog.New(slog.DiscardHandler),
		priority: event.PriorityNormal,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "highlight", "marker", m.marker)

	m.handle = host.RegisterPostFixer(m.fix, m.priority)
	if err := host.Change(func(w *model.Writer) error {
		return m.fix(w, w.Batch())
	}); err != nil {
		m.logger.Warn("initial highlight failed", "error", err)
	}

	return m, m.detach
}

// Current returns the highlighted range, if any.
func (m *Maintainer) Current() (linkrange.Range, bool) {
	return m.current, m.active
}

// Updates returns how many times the marker was written or removed.
func (m *Maintainer) Updates() int {
	return m.updates
}

func (m *Maintainer) detach() {
	if !m.handle.Unregister() {
		return
	}
	if err := m.host.Change(func(w *model.Writer) error {
		return m.clear(w)
	}); err != nil {
		m.logger.Warn("removing highlight failed", "error", err)
	}
}

func (m *Maintainer) fix(w *model.Writer, _ *model.Batch) error {
	value, ok := m.host.SelectionAttribute(m.key)
	if !ok {
		return m.clear(w)
	}

	r, found, err := linkrange.ResolveValue(m.host, m.host.Selection().FirstPosition(), m.key, value)
	if err != nil {
		return err
	}
	if !found {
		return m.clear(w)
	}

	m.current, m.active = r, true
	if existing, ok := m.host.Marker(m.marker); ok && existing.Equal(r.Range) {
		return nil
	}
	if err := w.SetMarker(m.marker, r.Range); err != nil {
		return err
	}
	m.updates++
	m.logger.Debug("highlight set", "range", r.Range.String())
	return nil
}

func (m *Maintainer) clear(w *model.Writer) error {
	m.current, m.active = linkrange.Range{}, false
	removed, err := w.RemoveMarker(m.marker)
	if err != nil {
		return err
	}
	if removed {
		m.updates++
		m.logger.Debug("highlight removed")
	}
	return nil
}

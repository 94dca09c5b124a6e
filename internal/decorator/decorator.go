package decorator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HrefAttribute is the model attribute holding a link URL.
const HrefAttribute = "linkHref"

// Mode says how a decorator is applied.
type Mode int

const (
	// Automatic decorators apply when the URL matches.
	Automatic Mode = iota

	// Manual decorators are switched on per link.
	Manual
)

// String returns the mode name used in configuration.
func (m Mode) String() string {
	switch m {
	case Automatic:
		return "automatic"
	case Manual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseMode parses "automatic" or "manual", ignoring case.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "automatic":
		return Automatic, true
	case "manual":
		return Manual, true
	default:
		return 0, false
	}
}

// Decorator is a named set of HTML attributes for links.
type Decorator struct {
	ID         string
	Mode       Mode
	Label      string
	Attributes map[string]string

	// Default is the initial state of a manual decorator in link dialogs.
	Default bool

	// Match decides whether an automatic decorator applies.
	Match Matcher
}

// AttributeName returns the model attribute for a manual decorator ID,
// e.g. "isExternal" becomes "linkIsExternal".
func AttributeName(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return "link"
	}
	return "link" + string(unicode.ToUpper(r)) + id[size:]
}

func (d Decorator) validate() error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if d.Mode == Automatic && d.Match == nil {
		return fmt.Errorf("decorator %q: %w", d.ID, ErrNoMatcher)
	}
	return nil
}

// Entry is a registered decorator with its model attribute name.
type Entry struct {
	Decorator
	Attribute string
}

package convert

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/dshills/keylink/internal/decorator"
)

// NewPolicy returns the UGC policy extended with the attributes link
// decorators write on <a>. rel is left as written instead of forcing
// nofollow.
func NewPolicy(reg *decorator.Registry) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target", "rel").OnElements("a")

	if reg == nil {
		return p
	}
	for _, e := range reg.All() {
		for _, attr := range decorator.SortedKeys(e.Attributes) {
			p.AllowAttrs(attr).OnElements("a")
		}
	}
	return p
}

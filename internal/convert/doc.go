// Package convert turns link runs into HTML and back.
//
// Render (downcast) writes one <p> per line of text. Consecutive runs with the
// same link URL and the same manual decorators share a single <a>; the href
// passes through SafeURL and decorator attributes are added from the
// registry. Bold and italic runs are wrapped in <strong> and <i>.
//
// Parse (upcast) sanitises the input with a bluemonday policy, parses it with
// golang.org/x/net/html and walks the tree collecting runs:
//
//   - <a href> sets linkHref
//   - an <a> carrying every attribute of a manual decorator sets that
//     decorator's model attribute
//   - <strong> and <b> set bold, <i> and <em> set italic
//   - block elements and <br> separate text with "\n"
//
// ParseMarkdown renders Markdown with gomarkdown first, autolinking bare
// URLs. WithMinify passes Render output through tdewolff/minify.
package convert

// Package decorator manages link decorators: named sets of HTML attributes
// added to rendered links.
//
// Automatic decorators apply when their Matcher accepts the link URL.
// Manual decorators are toggled per link by the user; each one is stored on
// the text as its own boolean model attribute. The registry records that
// attribute name explicitly when the decorator is added, so callers never
// reconstruct it from the ID.
//
// # Matchers
//
//   - Regexp: a Go regular expression tested against the URL
//   - Func: any func(string) bool
//   - Lua: a sandboxed gopher-lua chunk that sees the URL as the global url
//     and returns a boolean
//
// Lua chunks run with only the base, table, string and math libraries and
// without file loading functions. Each evaluation is bounded by a timeout.
package decorator

package convert

import "regexp"

var (
	// attributeWhitespace matches characters browsers ignore inside URL
	// attributes.
	attributeWhitespace = regexp.MustCompile(`[\x{0000}-\x{0020}\x{00A0}\x{1680}\x{180E}\x{2000}-\x{2029}\x{205F}\x{3000}]`)

	// safeURL accepts http(s), ftp(s) and mailto URLs, relative URLs and
	// anything whose scheme-like prefix is not followed by a colon.
	safeURL = regexp.MustCompile(`(?i)^(?:(?:https?|ftps?|mailto):|[^a-z]|[a-z+.-]+(?:[^a-z+.:-]|$))`)
)

// UnsafeReplacement is returned by SafeURL for rejected URLs.
const UnsafeReplacement = "#"

// IsSafeURL reports whether url may be used as a link target.
func IsSafeURL(url string) bool {
	return safeURL.MatchString(attributeWhitespace.ReplaceAllString(url, ""))
}

// SafeURL returns url if it is safe and UnsafeReplacement otherwise.
func SafeURL(url string) string {
	if IsSafeURL(url) {
		return url
	}
	return UnsafeReplacement
}

package decorator

import (
	"fmt"
	"regexp"
)

// Matcher tests a link URL.
type Matcher interface {
	Match(url string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(url string) bool

// Match calls f.
func (f MatcherFunc) Match(url string) bool {
	return f(url)
}

// Func returns a Matcher backed by fn.
func Func(fn func(url string) bool) Matcher {
	return MatcherFunc(fn)
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Match(url string) bool {
	return m.re.MatchString(url)
}

func (m regexpMatcher) String() string {
	return m.re.String()
}

// Regexp returns a Matcher that accepts URLs matching pattern.
func Regexp(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return regexpMatcher{re: re}, nil
}

// MustRegexp is like Regexp but panics on an invalid pattern.
func MustRegexp(pattern string) Matcher {
	m, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// externalLink matches absolute and protocol-relative URLs.
var externalLink = MustRegexp(`^(https?:)?//`)

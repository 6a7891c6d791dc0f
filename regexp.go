package parsec

import (
	"regexp"
	"sync"
)

// Compiled patterns keyed by their source text. Entries are never removed.
var regexpCache sync.Map

// CompilePattern returns the cached matcher for pattern, compiling and caching it on first use.
//
// The returned expression is anchored to the start of the text it is applied to.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexpCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	actual, _ := regexpCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// MatchPattern creates a parser matching the regular expression pattern at the current offset.
//
// The match may be empty. The value is the matched text.
func MatchPattern(pattern string) (Parser[string], error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return func(in *Input, pos int) Result[string] {
		loc := re.FindStringIndex(in.Text[pos:])
		if loc == nil {
			return Miss[string](pos)
		}
		return Ok(in.Text[pos:pos+loc[1]], pos+loc[1])
	}, nil
}

// Match is like MatchPattern but panics if the pattern is invalid.
//
// eg.
//
//	number := parsec.Match(`\d*\.\d+|\d+`)
func Match(pattern string) Parser[string] {
	p, err := MatchPattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

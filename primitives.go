package parsec

import (
	"strings"
)

// CharMatching matches a single character for which predicate returns true.
func CharMatching(predicate func(rune) bool) Parser[rune] {
	return func(in *Input, pos int) Result[rune] {
		rn, size := in.Rune(pos)
		if size == 0 || !predicate(rn) {
			return Miss[rune](pos)
		}
		return Ok(rn, pos+size)
	}
}

// Char matches the character c.
func Char(c rune) Parser[rune] {
	return CharMatching(func(rn rune) bool { return rn == c })
}

// AnyChar matches any single character.
func AnyChar() Parser[rune] {
	return CharMatching(func(rune) bool { return true })
}

// CharRange matches a character in the inclusive range between lo and hi.
//
// The bounds may be given in either order.
func CharRange(lo, hi rune) Parser[rune] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return CharMatching(func(rn rune) bool { return rn >= lo && rn <= hi })
}

// CharSet matches any character in set.
func CharSet(set string) Parser[rune] {
	return CharMatching(func(rn rune) bool { return strings.ContainsRune(set, rn) })
}

// NotInSet matches any character not in set.
func NotInSet(set string) Parser[rune] {
	return CharMatching(func(rn rune) bool { return !strings.ContainsRune(set, rn) })
}

// WhiteSpace matches a single space, tab, carriage return or newline.
func WhiteSpace() Parser[rune] { return CharSet(" \t\r\n") }

// Digit matches a single ASCII digit.
func Digit() Parser[rune] { return CharRange('0', '9') }

// Alpha matches a single ASCII letter.
func Alpha() Parser[rune] { return Or(CharRange('a', 'z'), CharRange('A', 'Z')) }

// Literal matches the string s exactly.
func Literal(s string) Parser[string] {
	return func(in *Input, pos int) Result[string] {
		if !strings.HasPrefix(in.Text[pos:], s) {
			return Miss[string](pos)
		}
		return Ok(s, pos+len(s))
	}
}

// Literals matches the first of the given strings that is present.
//
// Resolution is by declaration order, so list longer literals sharing a prefix first.
func Literals(ss ...string) Parser[string] {
	parsers := make([]Parser[string], len(ss))
	for i, s := range ss {
		parsers[i] = Literal(s)
	}
	return OneOf(parsers...)
}

// End matches the end of input without consuming anything.
func End() Parser[struct{}] {
	return func(in *Input, pos int) Result[struct{}] {
		if pos != len(in.Text) {
			return Miss[struct{}](pos)
		}
		return Ok(struct{}{}, pos)
	}
}

// Always succeeds with value without consuming input.
func Always[R any](value R) Parser[R] {
	return func(in *Input, pos int) Result[R] { return Ok(value, pos) }
}

// Never fails recoverably. It is the identity of alternation.
func Never[R any]() Parser[R] {
	return func(in *Input, pos int) Result[R] { return Miss[R](pos) }
}

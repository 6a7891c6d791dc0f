// Package parsec is a backtracking parser combinator library.
//
// Grammars are built directly in Go by combining primitive matchers with combinators. Every
// parser is a pure function of the input and an offset, returning a Result that is one of:
//
//   - Success: the parser matched and produced a value and the offset following the match.
//   - Recoverable: the parser did not match here. Or, OneOf, Repeat, Optional and the lookahead
//     combinators catch this and try something else at the same offset.
//   - Fatal: a diagnostic that aborts the whole evaluation. Nothing but Evaluate intercepts it.
//
// Recoverable failures are escalated to Fatal at grammar-chosen commit points with Commit or
// Expected, which is how a grammar produces precise error messages instead of a generic
// "no match".
//
// The supported constructs are:
//
//   - `CharMatching`, `Char`, `CharRange`, `CharSet`, `NotInSet`, `AnyChar` Match one character.
//   - `Literal`, `Literals` Match fixed strings.
//   - `Match` Match a regular expression anchored at the current offset.
//   - `End`, `Always`, `Never` Zero-width matchers.
//   - `And`, `Sequence`, `SkipLeft`, `SkipRight`, `Surround` Sequencing.
//   - `Map`, `MapErr`, `Value`, `Where`, `FlatMap` Transformation.
//   - `Or`, `OneOf` Ordered alternation.
//   - `Repeat`, `Many0`, `Many1`, `SepBy0`, `SepBy1` Repetition.
//   - `Optional`, `Lookahead`, `Not`, `NotFollowedBy` Optionality and lookahead.
//   - `Commit`, `Expected` Escalation to Fatal.
//   - `Deferred`, `Ref` Forward references for recursive grammars.
//
// Here's a grammar for a nested list of digits, eg. "[1,[2,3]]":
//
//	var list parsec.Parser[any]
//	item := parsec.OneOf(parsec.AsAny(parsec.Digit()), parsec.Ref(&list))
//	list = parsec.AsAny(parsec.Surround(
//		parsec.SepBy0(item, parsec.Char(',')),
//		parsec.Char('['),
//		parsec.Expected(parsec.Char(']'), "expected ']'"),
//	))
//	value, err := parsec.Evaluate(list, "[1,[2,3]]")
package parsec

package parsec

import "fmt"

// Repeat matches p at least min and at most max times.
//
// The first min matches are mandatory and any failure among them is returned as-is. After that
// p is applied greedily until it fails recoverably, which ends the repetition at the offset
// preceding the failed attempt. A negative max means no upper bound; in that case a match that
// consumes nothing also ends the repetition, and its value is discarded.
//
// Repeat panics if min is negative or exceeds a non-negative max.
func Repeat[R any](p Parser[R], min, max int) Parser[[]R] {
	if min < 0 || (max >= 0 && min > max) {
		panic(fmt.Sprintf("parsec: invalid Repeat bounds min=%d max=%d", min, max))
	}
	return func(in *Input, pos int) Result[[]R] {
		out := make([]R, 0, min)
		next := pos
		for len(out) < min {
			r := p(in, next)
			if !r.OK() {
				return failed[[]R](r)
			}
			out = append(out, r.Value)
			next = r.Next
		}
		for max < 0 || len(out) < max {
			r := p(in, next)
			if r.Outcome == Fatal {
				return failed[[]R](r)
			}
			if r.Outcome == Recoverable {
				break
			}
			if max < 0 && r.Next == next {
				break
			}
			out = append(out, r.Value)
			next = r.Next
		}
		return Ok(out, next)
	}
}

// Many0 matches p zero or more times.
func Many0[R any](p Parser[R]) Parser[[]R] { return Repeat(p, 0, -1) }

// Many1 matches p one or more times.
func Many1[R any](p Parser[R]) Parser[[]R] { return Repeat(p, 1, -1) }

// SepBy1 matches one or more p separated by sep.
func SepBy1[R, S any](p Parser[R], sep Parser[S]) Parser[[]R] {
	return Map(And(p, Many0(SkipLeft(sep, p))), func(v Pair[R, []R]) []R {
		return append([]R{v.Left}, v.Right...)
	})
}

// SepBy0 matches zero or more p separated by sep.
func SepBy0[R, S any](p Parser[R], sep Parser[S]) Parser[[]R] {
	return Optional(SepBy1(p, sep), []R{})
}

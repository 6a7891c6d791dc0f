package parsec

// Or matches p, or q at the same offset if p fails recoverably.
//
// A Fatal result from p is returned without trying q. If both fail recoverably, the failure is
// reported at the furthest offset either reached, so the result is p's miss rather than q's when
// p got further.
func Or[R any](p, q Parser[R]) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		r := p(in, pos)
		if r.Outcome != Recoverable {
			return r
		}
		alt := q(in, pos)
		if alt.Outcome == Recoverable && r.Next > alt.Next {
			return r
		}
		return alt
	}
}

// OneOf returns the result of the first alternative that does not fail recoverably.
//
// Alternatives are tried in declaration order; there is no longest-match resolution. With no
// alternatives OneOf always fails recoverably.
func OneOf[R any](parsers ...Parser[R]) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		furthest := pos
		for _, p := range parsers {
			r := p(in, pos)
			if r.Outcome != Recoverable {
				return r
			}
			if r.Next > furthest {
				furthest = r.Next
			}
		}
		return Miss[R](furthest)
	}
}

package parsec

// Lookahead succeeds with p's value if p matches at the current offset, but consumes nothing.
func Lookahead[R any](p Parser[R]) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		r := p(in, pos)
		if !r.OK() {
			return r
		}
		return Ok(r.Value, pos)
	}
}

// Not succeeds without consuming input if p fails recoverably at the current offset, and fails
// recoverably if p matches.
func Not[R any](p Parser[R]) Parser[struct{}] {
	return func(in *Input, pos int) Result[struct{}] {
		r := p(in, pos)
		switch r.Outcome {
		case Recoverable:
			return Ok(struct{}{}, pos)
		case Fatal:
			return failed[struct{}](r)
		}
		return Miss[struct{}](pos)
	}
}

// NotFollowedBy matches p only if test does not match immediately after it.
func NotFollowedBy[R, T any](p Parser[R], test Parser[T]) Parser[R] {
	return SkipRight(p, Not(test))
}

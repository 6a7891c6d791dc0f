package parsec

// Optional matches p, or yields def without consuming input if p fails recoverably.
//
// Optional never fails recoverably itself. Fatal results from p are returned unchanged.
func Optional[R any](p Parser[R], def R) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		r := p(in, pos)
		if r.Outcome == Recoverable {
			return Ok(def, pos)
		}
		return r
	}
}

package parsec

// Commit escalates a recoverable failure of p into a Fatal diagnostic.
//
// Use it at the point where a grammar knows it is on the right branch, eg. immediately after an
// opening delimiter, so that later syntax errors are reported where they occur instead of
// causing an enclosing alternative to be tried.
//
// diagnostic is called with the offset at which the failure was detected. If it returns anything
// other than a positioned *ParseError, the error is positioned at that offset.
func Commit[R any](p Parser[R], diagnostic func(in *Input, pos int) error) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		r := p(in, pos)
		if r.Outcome != Recoverable {
			return r
		}
		return Abort[R](AnnotateError(in, r.Next, diagnostic(in, r.Next)))
	}
}

// Expected commits p with a fixed diagnostic message.
//
// The diagnostic is positioned where p failed, which may be past the offset where p started.
func Expected[R any](p Parser[R], message string) Parser[R] {
	return Commit(p, func(*Input, int) error { return &ParseError{Msg: message} })
}

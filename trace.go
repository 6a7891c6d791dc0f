package parsec

import (
	"fmt"
)

// Named labels p for tracing.
//
// When the evaluation was configured with Trace, each invocation writes a line on entry and a
// line with the outcome on exit. Otherwise Named has no effect.
func Named[R any](name string, p Parser[R]) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		if in.trace == nil {
			return p(in, pos)
		}
		fmt.Fprintf(in.trace, "%s %s %s\n", in.Position(pos), name, in.Near(pos))
		r := p(in, pos)
		switch r.Outcome {
		case Success:
			fmt.Fprintf(in.trace, "%s %s matched %q\n", in.Position(pos), name, in.Text[pos:r.Next])
		case Recoverable:
			fmt.Fprintf(in.trace, "%s %s no match at %s\n", in.Position(pos), name, in.Position(r.Next))
		case Fatal:
			fmt.Fprintf(in.trace, "%s %s fatal: %s\n", in.Position(pos), name, r.Err)
		}
		return r
	}
}

package parsec

// A Parser attempts to match the text of in starting at byte offset pos.
//
// Parsers hold no mutable state. They may close over constants and other parsers, so the same
// Parser can be reused across evaluations and goroutines.
type Parser[R any] func(in *Input, pos int) Result[R]

// Parse invokes the parser at the given offset.
func (p Parser[R]) Parse(in *Input, pos int) Result[R] {
	return p(in, pos)
}

// Outcome of a single parser invocation.
type Outcome int

const (
	// Success means the parser matched. Result.Value and Result.Next are valid.
	Success Outcome = iota
	// Recoverable means the parser did not match here. Alternation, repetition, optionality
	// and lookahead may try something else at the same offset.
	Recoverable
	// Fatal is a terminal diagnostic. Only the evaluator boundary intercepts it.
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Recoverable:
		return "recoverable"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Result of invoking a Parser.
type Result[R any] struct {
	Outcome Outcome
	// Value is only meaningful on Success.
	Value R
	// Next is the offset following the match on Success, or the offset at which the
	// failure was detected otherwise.
	Next int
	// Err is set for Fatal results only.
	Err *ParseError
}

// OK returns true if the result is a Success.
func (r Result[R]) OK() bool { return r.Outcome == Success }

// Ok creates a successful Result.
func Ok[R any](value R, next int) Result[R] {
	return Result[R]{Outcome: Success, Value: value, Next: next}
}

// Miss creates a Recoverable Result detected at pos.
func Miss[R any](pos int) Result[R] {
	return Result[R]{Outcome: Recoverable, Next: pos}
}

// Abort creates a Fatal Result.
func Abort[R any](err *ParseError) Result[R] {
	return Result[R]{Outcome: Fatal, Next: err.Offset, Err: err}
}

// Retype a failed result into a Result of another value type.
func failed[B, A any](r Result[A]) Result[B] {
	return Result[B]{Outcome: r.Outcome, Next: r.Next, Err: r.Err}
}

// Pair is the value produced by And and FlatMap.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// MakePair is a convenience constructor for Pair.
func MakePair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{Left: left, Right: right}
}

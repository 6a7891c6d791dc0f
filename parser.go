package parsec

import (
	"io"
)

// Evaluate parser against the complete input.
//
// The value is returned only if the parser matched all of input, unless AllowTrailing is given.
// A Fatal diagnostic raised inside the grammar is returned as a *ParseError; a recoverable
// failure or unconsumed input is returned as an *UnexpectedInputError.
func Evaluate[R any](parser Parser[R], input string, opts ...Option) (R, error) {
	var zero R
	o := &options{}
	for _, option := range opts {
		if err := option(o); err != nil {
			return zero, err
		}
	}
	in := &Input{Filename: o.filename, Text: input, trace: o.trace}
	r := parser(in, 0)
	switch r.Outcome {
	case Fatal:
		return zero, r.Err
	case Recoverable:
		return zero, &UnexpectedInputError{Pos: in.Position(r.Next), Near: in.Near(r.Next)}
	}
	if r.Next != len(input) && !o.allowTrailing {
		return zero, &UnexpectedInputError{Pos: in.Position(r.Next), Near: in.Near(r.Next), Trailing: true}
	}
	return r.Value, nil
}

// EvaluateBytes is a convenience around Evaluate.
func EvaluateBytes[R any](parser Parser[R], input []byte, opts ...Option) (R, error) {
	return Evaluate(parser, string(input), opts...)
}

// EvaluateReader reads all of r and evaluates parser against it.
//
// If r has a Name() method, eg. *os.File, it is used as the filename unless the Filename option
// overrides it.
func EvaluateReader[R any](parser Parser[R], r io.Reader, opts ...Option) (R, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero R
		return zero, err
	}
	if name := NameOfReader(r); name != "" {
		opts = append([]Option{Filename(name)}, opts...)
	}
	return Evaluate(parser, string(data), opts...)
}

// NameOfReader attempts to retrieve the filename of a reader.
func NameOfReader(r interface{}) string {
	if nr, ok := r.(interface{ Name() string }); ok {
		return nr.Name()
	}
	return ""
}

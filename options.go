package parsec

import "io"

// An Option to modify the behaviour of an evaluation.
type Option func(o *options) error

type options struct {
	filename      string
	allowTrailing bool
	trace         io.Writer
}

// Filename sets the filename reported in positions and errors.
func Filename(name string) Option {
	return func(o *options) error {
		o.filename = name
		return nil
	}
}

// AllowTrailing allows the parser to match a prefix of the input.
func AllowTrailing() Option {
	return func(o *options) error {
		o.allowTrailing = true
		return nil
	}
}

// Trace the evaluation of Named parsers to "w".
func Trace(w io.Writer) Option {
	return func(o *options) error {
		o.trace = w
		return nil
	}
}

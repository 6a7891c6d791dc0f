package parsec

import (
	"errors"
	"fmt"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() Position
}

// ParseError is the payload of a Fatal result.
//
// Its line and column are only computed when the error is rendered, so constructing one is cheap.
type ParseError struct {
	Msg    string
	Offset int
	input  *Input
	err    error
}

var _ Error = &ParseError{}

// Errorf creates a new ParseError with no position.
//
// Errors returned from diagnostic builders or MapErr functions are positioned by the combinator
// that produced them.
func Errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// AnnotateError positions an existing error at offset of in.
//
// If the existing error is already a *ParseError it is returned unmodified, unless it has no
// input attached yet.
func AnnotateError(in *Input, offset int, err error) *ParseError {
	if err == nil {
		return &ParseError{Msg: "unexpected input " + in.Near(offset), Offset: offset, input: in}
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		if perr.input != nil {
			return perr
		}
		out := *perr
		out.input = in
		out.Offset = offset
		return &out
	}
	return &ParseError{Msg: err.Error(), Offset: offset, input: in}
}

// Wrapf attempts to wrap an existing error in a new message.
//
// The resulting error is positioned at offset of in and unwraps to err.
func Wrapf(in *Input, offset int, err error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...) + ": " + err.Error(),
		Offset: offset,
		input:  in,
		err:    err,
	}
}

func (p *ParseError) Message() string { return p.Msg }

// Position computes the line and column of the error.
func (p *ParseError) Position() Position {
	if p.input == nil {
		return Position{Offset: p.Offset}
	}
	return p.input.Position(p.Offset)
}

func (p *ParseError) Error() string { return FormatError(p.Position(), p.Msg) }
func (p *ParseError) Unwrap() error { return p.err }

// UnexpectedInputError is returned by Evaluate when the grammar failed without escalating to a
// ParseError, or when it matched without consuming the whole input.
type UnexpectedInputError struct {
	Pos Position
	// Near is a quoted excerpt of the input at Pos, or "<EOF>".
	Near string
	// Trailing is true if the grammar matched a prefix of the input.
	Trailing bool
}

var _ Error = &UnexpectedInputError{}

func (u *UnexpectedInputError) Message() string {
	switch {
	case u.Trailing:
		return fmt.Sprintf("unexpected trailing input %s", u.Near)
	case u.Near == "<EOF>":
		return "no match at end of input"
	default:
		return fmt.Sprintf("no match (near %s)", u.Near)
	}
}

func (u *UnexpectedInputError) Position() Position { return u.Pos }
func (u *UnexpectedInputError) Error() string      { return FormatError(u.Pos, u.Message()) }

package parsec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Input is the read-only context of a single evaluation.
type Input struct {
	Filename string
	Text     string
	trace    io.Writer
}

// NewInput creates an Input for text.
func NewInput(filename, text string) *Input {
	return &Input{Filename: filename, Text: text}
}

// Len of the input in bytes.
func (in *Input) Len() int { return len(in.Text) }

// Position of the given byte offset.
//
// This scans the input from the start and should only be used when materialising diagnostics.
func (in *Input) Position(offset int) Position {
	if offset > len(in.Text) {
		offset = len(in.Text)
	}
	if offset < 0 {
		offset = 0
	}
	head := in.Text[:offset]
	line := strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	return Position{
		Filename: in.Filename,
		Offset:   offset,
		Line:     line,
		Column:   utf8.RuneCountInString(head[lineStart:]) + 1,
	}
}

// Near returns a short quoted excerpt of the input starting at offset.
func (in *Input) Near(offset int) string {
	if offset >= len(in.Text) {
		return "<EOF>"
	}
	rest := in.Text[offset:]
	n := 0
	for i := range rest {
		if n == 16 {
			return fmt.Sprintf("%q…", rest[:i])
		}
		n++
	}
	return fmt.Sprintf("%q", rest)
}

// Rune decodes the character at offset, returning its size in bytes or 0 at end of input.
func (in *Input) Rune(offset int) (rune, int) {
	if offset >= len(in.Text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.Text[offset:])
}

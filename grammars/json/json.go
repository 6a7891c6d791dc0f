// Package json is a JSON grammar built from parsec combinators.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/alecthomas/parsec"
)

// Kind of a JSON Value.
type Kind int

// Kinds of JSON values.
const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a parsed JSON value. Only the field selected by Kind is meaningful.
//
// Numbers containing a fraction or exponent are Float, all others are Int.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Array   []*Value
	Members []Member
}

// Member of an Object, in source order.
type Member struct {
	Key   string
	Value *Value
}

func NullValue() *Value              { return &Value{Kind: Null} }
func BoolValue(b bool) *Value        { return &Value{Kind: Bool, Bool: b} }
func IntValue(n int64) *Value        { return &Value{Kind: Int, Int: n} }
func FloatValue(f float64) *Value    { return &Value{Kind: Float, Float: f} }
func StringValue(s string) *Value    { return &Value{Kind: String, Str: s} }
func ArrayValue(vs ...*Value) *Value { return &Value{Kind: Array, Array: append([]*Value{}, vs...)} }

// ObjectValue creates an Object from members.
func ObjectValue(members ...Member) *Value {
	return &Value{Kind: Object, Members: append([]Member{}, members...)}
}

// Get the value of the last member named key, or nil.
func (v *Value) Get(key string) *Value {
	for i := len(v.Members) - 1; i >= 0; i-- {
		if v.Members[i].Key == key {
			return v.Members[i].Value
		}
	}
	return nil
}

// Interface converts v to the plain Go values used by encoding/json: nil, bool, int64, float64,
// string, []interface{} and map[string]interface{}.
func (v *Value) Interface() interface{} {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Int:
		return v.Int
	case Float:
		return v.Float
	case String:
		return v.Str
	case Array:
		out := make([]interface{}, len(v.Array))
		for i, e := range v.Array {
			out[i] = e.Interface()
		}
		return out
	case Object:
		out := make(map[string]interface{}, len(v.Members))
		for _, m := range v.Members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON encodes v, preserving the order of object members.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Array:
		buf := &bytes.Buffer{}
		buf.WriteByte('[')
		for i, e := range v.Array {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case Object:
		buf := &bytes.Buffer{}
		buf.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := stdjson.Marshal(m.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			data, err := m.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return stdjson.Marshal(v.Interface())
}

func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// Parse a JSON document.
func Parse(s string, options ...parsec.Option) (*Value, error) {
	return parsec.Evaluate(Grammar(), s, options...)
}

// Grammar returns the parser for a single JSON value surrounded by optional whitespace.
func Grammar() parsec.Parser[*Value] { return grammar }

var grammar = build()

func token(c rune) parsec.Parser[rune] { return parsec.Trim(parsec.Char(c)) }

// expect commits p, reporting what was expected.
func expect[R any](p parsec.Parser[R], what string) parsec.Parser[R] {
	return parsec.Commit(p, func(in *parsec.Input, pos int) error {
		return parsec.Errorf("unexpected %s (expected %s)", in.Near(pos), what)
	})
}

// One or more p separated by commas. Every element after a comma is required.
func commaList[R any](p parsec.Parser[R], what string) parsec.Parser[[]R] {
	rest := parsec.Many0(parsec.SkipLeft(token(','), expect(p, what)))
	return parsec.Map(parsec.And(p, rest), func(v parsec.Pair[R, []R]) []R {
		return append([]R{v.Left}, v.Right...)
	})
}

func build() parsec.Parser[*Value] {
	var value parsec.Parser[*Value]
	ref := parsec.Ref(&value)

	null := parsec.Map(parsec.Literal("null"), func(string) *Value { return NullValue() })
	boolean := parsec.Map(parsec.Literals("true", "false"), func(s string) *Value { return BoolValue(s == "true") })
	number := parsec.MapErr(parsec.Match(`[+-]?(\d*\.\d+|\d+)([eE][+-]?\d+)?`), parseNumber)
	str := parsec.MapErr(parsec.Match(`"([^"\x00-\x1F\x7F\\]|\\[\\"/bfnrt]|\\u[a-fA-F0-9]{4})*"`), unquote)
	strValue := parsec.Map(str, StringValue)

	array := parsec.Map(parsec.SkipLeft(token('['), expect(parsec.OneOf(
		parsec.Value(token(']'), []*Value{}),
		parsec.SkipRight(commaList(ref, "value"), expect(token(']'), `"," or "]"`)),
	), `value or "]"`)), func(vs []*Value) *Value { return &Value{Kind: Array, Array: vs} })

	key := parsec.Trim(str)
	member := parsec.Map(parsec.And(key, parsec.SkipLeft(expect(token(':'), `":"`), expect(ref, "value"))),
		func(v parsec.Pair[string, *Value]) Member { return Member{Key: v.Left, Value: v.Right} })
	object := parsec.Map(parsec.SkipLeft(token('{'), expect(parsec.OneOf(
		parsec.Value(token('}'), []Member{}),
		parsec.SkipRight(commaList(member, "string"), expect(token('}'), `"," or "}"`)),
	), `string or "}"`)), func(ms []Member) *Value { return &Value{Kind: Object, Members: ms} })

	value = parsec.Trim(parsec.OneOf(
		parsec.Named("number", number),
		parsec.Named("string", strValue),
		parsec.Named("bool", boolean),
		parsec.Named("null", null),
		parsec.Named("array", array),
		parsec.Named("object", object),
	))
	return value
}

func parseNumber(s string) (*Value, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", s, err)
		}
		return FloatValue(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %s: %w", s, err)
	}
	return IntValue(n), nil
}

// Decode a quoted JSON string. The grammar has already validated its escapes.
func unquote(s string) (string, error) {
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	out := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"', '\\', '/':
			out.WriteByte(s[i])
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'u':
			r1 := hex4(s[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r1) && i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				if r := utf16.DecodeRune(r1, hex4(s[i+3:i+7])); r != unicode.ReplacementChar {
					out.WriteRune(r)
					i += 6
					continue
				}
			}
			out.WriteRune(r1)
		default:
			return "", fmt.Errorf("invalid escape character %q", s[i])
		}
	}
	return out.String(), nil
}

func hex4(s string) rune {
	n, _ := strconv.ParseUint(s, 16, 32)
	return rune(n)
}

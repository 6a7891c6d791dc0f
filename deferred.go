package parsec

// Deferred defers construction of a parser until it is invoked.
//
// supplier is called every time the returned parser is invoked, never at construction, which
// allows parsers to refer to each other before they are defined:
//
//	var expr parsec.Parser[float64]
//	group := parsec.Surround(parsec.Deferred(func() parsec.Parser[float64] { return expr }), lp, rp)
//	expr = ...
//
// Callers that build parsers inside supplier should cache them themselves.
func Deferred[R any](supplier func() Parser[R]) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		return supplier()(in, pos)
	}
}

// Ref is a Deferred reference to the parser stored in cell.
func Ref[R any](cell *Parser[R]) Parser[R] {
	return Deferred(func() Parser[R] { return *cell })
}

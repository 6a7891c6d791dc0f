package parsec

// And matches p followed by q, pairing their values.
func And[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in *Input, pos int) Result[Pair[A, B]] {
		left := p(in, pos)
		if !left.OK() {
			return failed[Pair[A, B]](left)
		}
		right := q(in, left.Next)
		if !right.OK() {
			return failed[Pair[A, B]](right)
		}
		return Ok(Pair[A, B]{left.Value, right.Value}, right.Next)
	}
}

// Sequence matches each parser in order, collecting their values.
//
// An empty sequence matches without consuming input.
func Sequence[R any](parsers ...Parser[R]) Parser[[]R] {
	return func(in *Input, pos int) Result[[]R] {
		out := make([]R, 0, len(parsers))
		next := pos
		for _, p := range parsers {
			r := p(in, next)
			if !r.OK() {
				return failed[[]R](r)
			}
			out = append(out, r.Value)
			next = r.Next
		}
		return Ok(out, next)
	}
}

// AsAny erases the value type of p, so that parsers of different types can be combined with
// Sequence or OneOf.
func AsAny[R any](p Parser[R]) Parser[any] {
	return Map(p, func(v R) any { return v })
}

// Map transforms the value of a successful match.
func Map[A, B any](p Parser[A], mapper func(A) B) Parser[B] {
	return func(in *Input, pos int) Result[B] {
		r := p(in, pos)
		if !r.OK() {
			return failed[B](r)
		}
		return Ok(mapper(r.Value), r.Next)
	}
}

// MapErr transforms the value of a successful match with a function that may reject it.
//
// An error from mapper is a Fatal diagnostic positioned at the start of the match.
func MapErr[A, B any](p Parser[A], mapper func(A) (B, error)) Parser[B] {
	return func(in *Input, pos int) Result[B] {
		r := p(in, pos)
		if !r.OK() {
			return failed[B](r)
		}
		v, err := mapper(r.Value)
		if err != nil {
			return Abort[B](AnnotateError(in, pos, err))
		}
		return Ok(v, r.Next)
	}
}

// Value replaces the value of a successful match with value.
func Value[A, B any](p Parser[A], value B) Parser[B] {
	return Map(p, func(A) B { return value })
}

// Where fails recoverably if predicate rejects the value of a successful match.
func Where[R any](p Parser[R], predicate func(R) bool) Parser[R] {
	return func(in *Input, pos int) Result[R] {
		r := p(in, pos)
		if r.OK() && !predicate(r.Value) {
			return Miss[R](pos)
		}
		return r
	}
}

// FlatMap matches p, then builds a second parser from p's value and matches it.
//
// This supports context-sensitive constructs, such as a closing tag that must repeat the name
// of the opening tag.
func FlatMap[A, B any](p Parser[A], mapper func(A) Parser[B]) Parser[Pair[A, B]] {
	return func(in *Input, pos int) Result[Pair[A, B]] {
		left := p(in, pos)
		if !left.OK() {
			return failed[Pair[A, B]](left)
		}
		right := mapper(left.Value)(in, left.Next)
		if !right.OK() {
			return failed[Pair[A, B]](right)
		}
		return Ok(Pair[A, B]{left.Value, right.Value}, right.Next)
	}
}

// SkipLeft matches p then q, keeping only q's value.
func SkipLeft[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(And(p, q), func(v Pair[A, B]) B { return v.Right })
}

// SkipRight matches p then q, keeping only p's value.
func SkipRight[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(And(p, q), func(v Pair[A, B]) A { return v.Left })
}

// Surround matches prefix, p and suffix, keeping only p's value.
func Surround[R, P, S any](p Parser[R], prefix Parser[P], suffix Parser[S]) Parser[R] {
	return SkipRight(SkipLeft(prefix, p), suffix)
}

// Trim matches p surrounded by optional whitespace.
func Trim[R any](p Parser[R]) Parser[R] {
	ws := Many0(WhiteSpace())
	return Surround(p, ws, ws)
}

package parse

import "fmt"

// Parser converts a raw string into a value of type T.
// Implementations must be stateless: a single Parser may be used from
// multiple goroutines and for any number of Parse calls.
type Parser[T any] interface {
	// Parse attempts the conversion. On failure the returned error is a
	// [*Error] describing the parser and the offending input.
	Parse(raw string) (T, error)

	// Name identifies the parser in error messages, e.g. "int".
	Name() string
}

// Error is a recoverable parse failure.
type Error struct {
	Parser string // name of the failing parser
	Input  string // the raw input
	Err    error  // underlying cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Parser, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type parserFunc[T any] struct {
	name string
	fn   func(string) (T, error)
}

func (p parserFunc[T]) Name() string { return p.name }

func (p parserFunc[T]) Parse(raw string) (T, error) {
	v, err := p.fn(raw)
	if err != nil {
		var zero T
		return zero, &Error{Parser: p.name, Input: raw, Err: err}
	}
	return v, nil
}

// NewParser builds a Parser from a plain parse function. The function's
// error is wrapped in a [*Error] carrying name and input.
func NewParser[T any](name string, fn func(string) (T, error)) Parser[T] {
	return parserFunc[T]{name: name, fn: fn}
}

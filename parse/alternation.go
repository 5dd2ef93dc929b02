package parse

import (
	"strconv"
	"strings"
)

// AltError is the composite failure of an alternation: every branch
// failed. It lists each branch's error in the order the branches were
// tried.
type AltError struct {
	Input    string
	Branches []error
}

func (e *AltError) Error() string {
	var sb strings.Builder
	sb.WriteString("no alternative matched ")
	sb.WriteString(strconv.Quote(e.Input))
	for _, err := range e.Branches {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the branch errors to errors.Is and errors.As.
func (e *AltError) Unwrap() []error { return e.Branches }

type alternation[T any] struct {
	name    string
	parsers []Parser[T]
}

func (a alternation[T]) Name() string { return a.name }

func (a alternation[T]) Parse(raw string) (T, error) {
	branches := make([]error, 0, len(a.parsers))
	for _, p := range a.parsers {
		v, err := p.Parse(raw)
		if err == nil {
			return v, nil
		}
		branches = append(branches, err)
	}
	var zero T
	return zero, &AltError{Input: raw, Branches: branches}
}

// FirstOf composes parsers by alternation: each is tried in the order
// given and the first success wins. When every branch fails the result
// is a [*AltError] listing all branch errors.
func FirstOf[T any](parsers ...Parser[T]) Parser[T] {
	names := make([]string, len(parsers))
	for i, p := range parsers {
		names[i] = p.Name()
	}
	return alternation[T]{name: strings.Join(names, "|"), parsers: parsers}
}

type untyped[T any] struct {
	p Parser[T]
}

func (u untyped[T]) Name() string { return u.p.Name() }

func (u untyped[T]) Parse(raw string) (any, error) {
	v, err := u.p.Parse(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Untyped adapts a typed parser to Parser[any] so that alternations can
// mix result types, e.g. FirstOf(Untyped(Duration()), Untyped(Int())).
func Untyped[T any](p Parser[T]) Parser[any] {
	return untyped[T]{p: p}
}

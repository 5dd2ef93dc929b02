// Package parse converts raw prompt input into typed values.
//
// A [Parser] attempts to parse a string into a value of type T, failing
// with a descriptive [*Error]. Parsers are stateless and safe for
// concurrent reuse. [FirstOf] composes parsers by alternation: each is
// tried in order and the first success wins. [Untyped] adapts a typed
// parser to Parser[any] so alternations can mix result types.
package parse

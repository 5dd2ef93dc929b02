// Package style renders text with ANSI terminal styling.
//
// A [Spec] describes a style (colors and text attributes) and is turned
// into a reusable [Styler] with [New]. Invalid specs are rejected at
// construction time; rendering never fails. Color output is disabled
// automatically when stdout is not a terminal, see [SetColor].
//
// The package also provides named color [Theme]s shared by the prompt
// and spinner packages, [Strip] for removing escape sequences, and
// [Boxed] for drawing bordered text blocks.
package style

// Package prompt asks the user for typed, validated values.
//
// The core engine is [Prompt]: a line-based prompt that parses input
// with a [parse.Parser], re-asking on parse failures. A value supplied
// ahead of time (for example from a CLI flag) can bypass the
// interactive read entirely, see [Prompt.Provided].
//
// On top of the line-based engine the package provides richer terminal
// prompts built with bubbletea: [Confirm], [Text], [Select] and
// [FilterSelect]. These render to stderr so stdout stays clean for
// piping.
package prompt

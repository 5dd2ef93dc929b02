package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// String returns a parser that accepts any input as-is.
func String() Parser[string] {
	return NewParser("string", func(raw string) (string, error) {
		return raw, nil
	})
}

// Int returns a strict base-10 integer parser. Input is not trimmed:
// " 42 " is a parse failure, as is any fractional value.
func Int() Parser[int] {
	return NewParser("int", func(raw string) (int, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, errors.New("not a whole number")
		}
		return v, nil
	})
}

// Float returns a float64 parser. Like [Int], input is not trimmed.
func Float() Parser[float64] {
	return NewParser("float", func(raw string) (float64, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.New("not a number")
		}
		return v, nil
	})
}

var (
	truthy = []string{"true", "yes", "y", "1"}
	falsy  = []string{"false", "no", "n", "0"}
)

// Bool returns a parser accepting a fixed set of tokens,
// case-insensitively: true/yes/y/1 and false/no/n/0.
func Bool() Parser[bool] {
	return NewParser("bool", func(raw string) (bool, error) {
		token := strings.ToLower(raw)
		for _, t := range truthy {
			if token == t {
				return true, nil
			}
		}
		for _, f := range falsy {
			if token == f {
				return false, nil
			}
		}
		return false, fmt.Errorf("expected one of %s / %s",
			strings.Join(truthy, ", "), strings.Join(falsy, ", "))
	})
}

// Duration returns a parser for Go duration syntax, e.g. "1h30m" or "250ms".
// A bare number without a unit is a parse failure.
func Duration() Parser[time.Duration] {
	return NewParser("duration", func(raw string) (time.Duration, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return 0, errors.New(`not a duration (use forms like "30s" or "1h30m")`)
		}
		return v, nil
	})
}

// Enum returns a parser that accepts only the given choices,
// case-insensitively, and returns the canonical spelling.
func Enum(choices ...string) Parser[string] {
	return NewParser("enum", func(raw string) (string, error) {
		for _, c := range choices {
			if strings.EqualFold(raw, c) {
				return c, nil
			}
		}
		return "", fmt.Errorf("expected one of: %s", strings.Join(choices, ", "))
	})
}

package prompt

import (
	"errors"
	"fmt"
)

// ErrAborted reports that an interactive prompt ended before a valid
// value was read: end of input, or a closed input stream. It is never
// retried. Use errors.Is to test for it.
var ErrAborted = errors.New("prompt aborted")

// MaxAttemptsError reports that the user exhausted the retry budget
// without providing a parseable value.
type MaxAttemptsError struct {
	Attempts int
}

func (e *MaxAttemptsError) Error() string {
	return fmt.Sprintf("no valid value after %d attempts", e.Attempts)
}

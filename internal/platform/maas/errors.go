package maas

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the CLI exited zero but its output could
// not be parsed as the expected JSON object.
var ErrMalformedResponse = errors.New("malformed response from maas CLI")

// CommandError wraps a failed `maas` CLI invocation with the subcommand
// that was run and the captured combined output.
type CommandError struct {
	Subcommand string
	Output     string
	Err        error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("maas %s failed: %v: %s", e.Subcommand, e.Err, e.Output)
	}
	return fmt.Sprintf("maas %s failed: %v", e.Subcommand, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

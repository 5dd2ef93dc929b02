// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// It wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, so a failing command behind a spinner reports what actually
// went wrong instead of just "exit status 1".
//
//	out, err := cmd.OutputContext(ctx, "", "git", "fetch", "--all")
//	if err != nil {
//	    // err carries the command's stderr when there was any
//	}
package cmd

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/raphi011/ask/internal/log"
)

// RunContext executes a command, discarding stdout. When the command
// fails and wrote to stderr, that output becomes the error message.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command and returns its stdout. When the
// command fails and wrote to stderr, that output becomes the error
// message.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args...)
}

func run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Debugf("exec: %s %s", name, strings.Join(args, " "))

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

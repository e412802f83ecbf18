// Package runner runs external programs on behalf of providers and the
// launch resolver.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner captures the output of short-lived commands and starts detached ones.
type Runner interface {
	// Output runs name with args and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Spawn starts name with args and does not wait for it.
	Spawn(name string, args ...string) error
	// LookPath reports whether name is an executable on PATH.
	LookPath(name string) bool
}

// Exec is the os/exec backed Runner.
type Exec struct{}

// New returns the default Runner
func New() Exec { return Exec{} }

func (Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return out, fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
		}
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func (Exec) Spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", name, err)
	}
	// Reap the child so it does not linger as a zombie while we run.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (Exec) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

package provider

import (
	"context"
	"errors"
)

// fakeRunner returns canned stdout per program name and records argv
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	onPath  map[string]bool
	calls   [][]string
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if err := r.errs[name]; err != nil {
		return nil, err
	}
	out, ok := r.outputs[name]
	if !ok {
		return nil, errors.New(name + ": not found")
	}
	return []byte(out), nil
}

func (r *fakeRunner) Spawn(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func (r *fakeRunner) LookPath(name string) bool { return r.onPath[name] }

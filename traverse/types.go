// Package traverse: tunable options and error definitions for path search.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures path search behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters to customize DFSPath and BFSPath execution.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, limits the search to paths of at most MaxDepth hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip connections by returning false.
	// Called for each step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
// A nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the search at the given number of hops.
//
//	d > 0: limit paths to d hops
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips steps for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// buildOptions folds opts over the defaults and surfaces option errors.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

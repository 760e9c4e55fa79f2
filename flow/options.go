package flow

import "context"

// DefaultEpsilon is the default noise threshold for decoding and Verify.
const DefaultEpsilon = 1e-9

// Options configures the MaxFlow pipeline.
//   - Ctx: consulted before each pipeline stage; the solver call itself is
//     opaque and runs to completion once started.
//   - Epsilon: noise threshold for decode clipping and Verify slack
//     (default DefaultEpsilon).
//   - Tol: simplex optimality tolerance; 0 selects the solver's default.
//   - Verbose: print a one-line summary after a successful solve.
type Options struct {
	Ctx     context.Context
	Epsilon float64
	Tol     float64
	Verbose bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
	}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}

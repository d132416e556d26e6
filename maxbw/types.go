package maxbw

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *network.Digraph was passed to Solve.
	ErrNilGraph = errors.New("maxbw: digraph is nil")

	// ErrInvalidVertex indicates a vertex outside of [0, V).
	ErrInvalidVertex = errors.New("maxbw: invalid vertex")

	// ErrNegativeBandwidth indicates that an edge with a negative bandwidth
	// was found in the graph.
	ErrNegativeBandwidth = errors.New("maxbw: negative edge bandwidth")

	// ErrCheckFailed indicates that the computed labels violate one of the
	// optimality conditions verified by Check.
	ErrCheckFailed = errors.New("maxbw: optimality check failed")

	// ErrSettleLimit indicates that the relaxation loop performed more
	// extractions than allowed by WithSettleLimit.
	ErrSettleLimit = errors.New("maxbw: settle limit exceeded")
)

// Options configures the solver.
type Options struct {
	// Check runs the optimality checker once the relaxation loop is done and
	// makes Solve fail if it reports a violation.
	Check bool

	// SettleLimit is the maximum number of extractions performed by the
	// relaxation loop. Zero means no limit.
	SettleLimit int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithCheck enables the optimality checker at the end of Solve. The checker
// rescans the whole graph and is meant for tests and debugging.
func WithCheck() Option {
	return func(o *Options) {
		o.Check = true
	}
}

// WithSettleLimit bounds the number of extractions performed by Solve. It
// panics if n is negative.
func WithSettleLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("maxbw: settle limit must be non-negative")
		}
		o.SettleLimit = n
	}
}

// DefaultOptions returns the options used when none are given: no checker and
// no settle limit.
func DefaultOptions() Options {
	return Options{}
}

package kmeans

import (
	"log/slog"
	"math/rand"
	"time"
)

const (
	// DefaultMaxIterations is the default iteration budget for Fit.
	DefaultMaxIterations = 100

	// DefaultTolerance is the default convergence tolerance on the overall
	// centroid shift between iterations.
	DefaultTolerance = 1e-4
)

type options struct {
	maxIters  int
	tolerance float64
	rng       *rand.Rand
	logger    *Logger
}

// Option configures engine construction.
//
// Options exist to avoid exploding the constructor surface; New validates
// the resulting configuration as a whole.
type Option func(*options)

// WithMaxIterations configures the iteration budget for Fit.
// Exhausting the budget is not an error: the engine terminates in
// StateExhausted, which callers can distinguish from StateConverged.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIters = n
	}
}

// WithTolerance configures the convergence tolerance. Fit stops once the
// Euclidean norm of the overall centroid shift between consecutive
// iterations drops below it.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithSeed configures a deterministic random source. Two engines built
// with the same seed and fitted on the same input with the same init
// method produce identical centroids, labels, and inertia.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandSource injects a random source directly. The engine takes
// ownership: the source must not be shared with other engines.
//
// If nil is passed, the default (wall-clock seeded) source is used.
func WithRandSource(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger configures structured logging for fit and predict operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIters:  DefaultMaxIterations,
		tolerance: DefaultTolerance,
		logger:    NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		// Non-deterministic across runs; affects the convergence path and
		// final inertia, not the correctness contracts.
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

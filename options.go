package dfa

// TransitionLogger is called for every transition taken while running an input.
type TransitionLogger func(from, to, label int)

type options struct {
	capacity     int // expected number of states, default 4
	exactReverse bool
	logger       TransitionLogger
}

func newOptions(opts ...Option) *options {
	o := &options{
		capacity: 4,
		logger:   func(int, int, int) {},
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// WithCapacity Sizes the internal sets for roughly the given number of states.
func WithCapacity(states int) Option {
	return func(o *options) {
		if states > 0 {
			o.capacity = states
		}
	}
}

// WithExactReverse Keeps the predecessor relation an exact transpose of the live edges. By
// default, overwriting the destination of an edge leaves the old predecessor link in place, so
// AliveStates may over-approximate.
func WithExactReverse() Option {
	return func(o *options) {
		o.exactReverse = true
	}
}

// WithTransitionLogger Installs a hook called on every transition taken by Accepts, Run and RunBytes.
func WithTransitionLogger(logger TransitionLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

package sekai

type options struct {
	logger   *Logger
	capacity int
	workers  int
	checked  bool
}

func defaultOptions() options {
	return options{
		logger:   NoopLogger(),
		capacity: MaxSlots,
		checked:  true,
	}
}

// Option configures a World.
type Option func(*options)

// WithCapacity sets the address-space domain shared by the world's entities
// and columns. Values outside (0, MaxSlots] are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 && n <= MaxSlots {
			o.capacity = n
		}
	}
}

// WithLogger sets the world's logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCheckedAccess toggles runtime borrow tracking in Run and RunParallel.
// When enabled (the default), work whose Access overlaps a column already
// borrowed elsewhere fails with ErrAccessConflict instead of running.
// Disabling it trusts callers to keep mutable access disjoint.
func WithCheckedAccess(enabled bool) Option {
	return func(o *options) {
		o.checked = enabled
	}
}

// WithWorkers limits how many systems of one stage RunParallel executes at
// once. Zero or less means no limit.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

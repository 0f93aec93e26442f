package pure

import "go.uber.org/zap"

type options struct {
	store  any
	logger *zap.Logger
	name   string
}

// Option configures a Table.
type Option func(*options)

// WithStore sets the storage of the table. The store's key and value types must
// match the table's, otherwise NewTable panics with ErrStoreType.
// Defaults to an unbounded SyncMapStore.
func WithStore[K comparable, V any](store Store[K, V]) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger used for debug and failure logs. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName sets a human readable name attached to every log entry of the table.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

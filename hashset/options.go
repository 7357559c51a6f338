package hashset

import "go.uber.org/zap"

type options[E any] struct {
	hasher Hasher[E]
	logger *zap.Logger
}

// Option configures a HashSet at construction.
type Option[E any] func(*options[E])

// WithHasher sets the hash function and equivalence relation of the set.
func WithHasher[E any](h Hasher[E]) Option[E] {
	return func(o *options[E]) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithLogger sets the logger used for debug events. The default discards them.
func WithLogger[E any](l *zap.Logger) Option[E] {
	return func(o *options[E]) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions[E any](opts []Option[E]) options[E] {
	o := options[E]{
		hasher: DefaultHasher[E](),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

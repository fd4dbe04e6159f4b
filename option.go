package memtree

// Options configures tree behavior.
type Options struct {
	logger          Logger
	searchCacheSize uint32 // Max entries of the search cache. 0 disables it.
	checkInvariants bool   // Run Verify after every Insert.
}

// DefaultOptions returns the default configuration: no logging, no search
// cache, no invariant checks.
//
//goland:noinspection GoUnusedExportedFunction
func DefaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger sets the logger used for structural events such as root growth.
// Passing nil restores the no-op logger.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		if logger == nil {
			logger = DiscardLogger{}
		}
		opts.logger = logger
	}
}

// WithSearchCache enables an LRU cache of key -> node lookups holding at most
// size entries. The cache is purged whenever an insertion splits a node, so it
// pays off for read-heavy workloads between bursts of inserts.
//
//goland:noinspection GoUnusedExportedFunction
func WithSearchCache(size uint32) Option {
	return func(opts *Options) {
		opts.searchCacheSize = size
	}
}

// WithInvariantChecks runs Verify after every Insert and panics if the tree is
// left in an invalid state. Intended for tests and debugging; it makes every
// insertion O(n).
//
//goland:noinspection GoUnusedExportedFunction
func WithInvariantChecks() Option {
	return func(opts *Options) {
		opts.checkInvariants = true
	}
}

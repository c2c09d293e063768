package bnb

import "runtime"

// Config holds the two parallelism widths Explore is parameterized by.
// The original source template-parameterizes these as compile-time
// constants; per §9's design note, taking them as runtime values loses
// no correctness, only a small scheduling cost.
type Config struct {
	// BranchCores is the outer frontier-parallelism width: how many
	// goroutines walk the current level's frontier concurrently.
	BranchCores int

	// OpCores is the total worker budget shared between the outer
	// branch-parallel region and the inner bound-parallel region.
	// bound_threads = max(1, OpCores/BranchCores).
	OpCores int

	// ArenaCapacity overrides the default pre-allocated SearchNode
	// arena size. Zero means "use the default sizing heuristic".
	ArenaCapacity int
}

// Option configures a Config.
type Option func(*Config)

// WithBranchCores sets the outer frontier-parallelism width.
func WithBranchCores(n int) Option {
	return func(c *Config) { c.BranchCores = n }
}

// WithOpCores sets the total worker budget.
func WithOpCores(n int) Option {
	return func(c *Config) { c.OpCores = n }
}

// WithArenaCapacity overrides the arena's pre-allocated capacity.
func WithArenaCapacity(n int) Option {
	return func(c *Config) { c.ArenaCapacity = n }
}

// DefaultConfig returns BranchCores=1, OpCores=runtime.GOMAXPROCS(0),
// ArenaCapacity=0 (use the default sizing heuristic) — one outer
// frontier walker unless overridden, matching spec.md §8's
// "Determinism under serial execution" law as the zero-option default.
// The inner bound calculation still fans out over up to OpCores workers.
func DefaultConfig() Config {
	return Config{
		BranchCores:   1,
		OpCores:       runtime.GOMAXPROCS(0),
		ArenaCapacity: 0,
	}
}

// resolve applies opts over DefaultConfig and clamps to sane minimums.
func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BranchCores < 1 {
		cfg.BranchCores = 1
	}
	if cfg.OpCores < 1 {
		cfg.OpCores = 1
	}

	return cfg
}

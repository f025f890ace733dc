package thompre

// Config controls optional compile-time behavior that doesn't change
// which strings a pattern matches, only how fast Compile and Match run.
type Config struct {
	// DisableLiteralAccel turns off the literal-set fast path, forcing
	// every pattern through NFA simulation. Useful for benchmarking the
	// simulator in isolation, or ruling out the accelerator when
	// diagnosing a suspected match discrepancy.
	// Default: false
	DisableLiteralAccel bool

	// MaxAccelLiterals bounds how many literal strings the literal-set
	// detector will enumerate for a pure alternation pattern before
	// giving up and falling back to NFA simulation. Zero or negative
	// means use the package default.
	// Default: accel.DefaultMaxLiterals
	MaxAccelLiterals int
}

// DefaultConfig returns a Config with sensible defaults: the literal
// accelerator enabled with a conservative literal-count ceiling.
func DefaultConfig() Config {
	return Config{
		DisableLiteralAccel: false,
		MaxAccelLiterals:    defaultMaxAccelLiterals,
	}
}

package autodiff

// Config holds the tracer's recording configuration.
type Config struct {
	// EnableBackprop controls graph recording. When false, operations produce
	// detached Values: no generation, no creator link, no node.
	EnableBackprop bool
}

// DefaultConfig returns the configuration new tracers start with.
func DefaultConfig() Config {
	return Config{EnableBackprop: true}
}

// Config returns the active configuration.
func (t *Tracer) Config() Config {
	return t.configs[len(t.configs)-1]
}

// IsRecording reports whether operations are currently recorded.
func (t *Tracer) IsRecording() bool {
	return t.Config().EnableBackprop
}

// UsingConfig makes cfg the active configuration and returns a function that
// restores the previous one. Scopes nest with stack discipline:
//
//	defer tr.UsingConfig(autodiff.Config{EnableBackprop: false})()
//
// Calling the restore function more than once has no further effect.
func (t *Tracer) UsingConfig(cfg Config) (restore func()) {
	depth := len(t.configs)
	t.configs = append(t.configs, cfg)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		// An enclosing scope may already have been restored.
		if depth < len(t.configs) {
			t.configs = t.configs[:depth]
		}
	}
}

// NoGrad disables recording until the returned function is called.
//
//	defer tr.NoGrad()()
//	y, _ := tr.Mul(x, 2) // y has no creator
func (t *Tracer) NoGrad() (restore func()) {
	return t.UsingConfig(Config{EnableBackprop: false})
}

// WithoutRecording runs fn with recording disabled. The prior configuration
// is restored however fn exits, including by panic.
func (t *Tracer) WithoutRecording(fn func() error) error {
	defer t.NoGrad()()
	return fn()
}

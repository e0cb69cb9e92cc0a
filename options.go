package stage1json

// Backend selects which Stage-1 implementation a Context call site
// prefers.
type Backend int

const (
	// BackendAuto lets the module pick. Unlike a real GPU dispatch, the
	// goroutine-based GPU-style backend has no hardware to probe, so
	// Auto always resolves to the CPU backend today.
	BackendAuto Backend = iota
	BackendCPU
	BackendGPU
)

// Option configures a Context using the functional-options pattern.
type Option func(*config) error

type config struct {
	backend Backend
}

// WithBackend forces Context to use the given backend rather than the
// Auto default.
func WithBackend(b Backend) Option {
	return func(c *config) error {
		c.backend = b
		return nil
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{backend: BackendAuto}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}

package internal

// Option is a functional option for configuring the generator runtime.
type Option func(*application)

type application struct {
	config *Config
}

// WithConfig sets the runtime configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

package luma

// DefaultKernelName is the registry name of the baseline kernel.
const DefaultKernelName = "magnitude"

// DefaultMinChunk is the smallest sample range handed to one worker.
const DefaultMinChunk = 4096

// Config holds renderer settings.
type Config struct {
	// Kernel combines each sample. Nil selects Magnitude.
	Kernel Kernel

	// Workers bounds the number of goroutines per call. Values <= 1 run
	// the loop on the calling goroutine.
	Workers int

	// MinChunk is the minimum number of samples per worker.
	MinChunk int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the sequential baseline configuration.
func DefaultConfig() Config {
	return Config{
		Kernel:   Magnitude,
		Workers:  1,
		MinChunk: DefaultMinChunk,
	}
}

// WithKernel sets the combination kernel. A nil kernel is ignored.
func WithKernel(k Kernel) Option {
	return func(cfg *Config) {
		if k != nil {
			cfg.Kernel = k
		}
	}
}

// WithWorkers sets the maximum number of concurrent workers.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithMinChunk sets the minimum samples per worker.
func WithMinChunk(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinChunk = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

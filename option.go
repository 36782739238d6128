package fusedlru

type cacheConfig struct {
	loadFactor float32
}

func computeCacheConfig(options []Option) cacheConfig {
	conf := cacheConfig{
		loadFactor: defaultLoadFactor,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option configures New.
type Option func(conf *cacheConfig)

// WithLoadFactor overrides the default load factor (0.66) used to size
// the backing buffer. Must be in (0, 1); New validates it.
func WithLoadFactor(loadFactor float32) Option {
	return func(conf *cacheConfig) {
		conf.loadFactor = loadFactor
	}
}

package storefront

import "go.uber.org/zap"

type clientConfig struct {
	addrs         []string
	username      string
	password      string
	atomicReserve bool
	logger        *zap.Logger
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithRedis points the client at a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.addrs = []string{addr}
		cfg.password = password
	})
}

// WithRedisCluster points the client at a Redis cluster.
func WithRedisCluster(addrs []string, username, password string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.addrs = addrs
		cfg.username = username
		cfg.password = password
	})
}

// WithAtomicReserve switches order placement to the checked all-or-nothing
// stock decrement instead of the default validate-then-reduce pair.
func WithAtomicReserve() Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.atomicReserve = true
	})
}

// WithLogger sets the logger used by the engines. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.logger = l
	})
}

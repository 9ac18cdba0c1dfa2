package resilience

import "time"

// CircuitBreakerConfig describes one upstream breaker. A disabled config
// yields a nil breaker, which lets every call through.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig fills unset or out-of-range fields from the
// defaults. Enabled is left as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	if cfg.HalfOpenMaxReq > cfg.FailureThreshold {
		cfg.HalfOpenMaxReq = cfg.FailureThreshold
	}
	return cfg
}

// LogArgs renders the config as logger key/value pairs.
func (c CircuitBreakerConfig) LogArgs(prefix string) []any {
	if !c.Enabled {
		return []any{prefix + "_enabled", false}
	}
	return []any{
		prefix + "_enabled", true,
		prefix + "_failure_threshold", c.FailureThreshold,
		prefix + "_open_timeout", c.OpenTimeout.String(),
		prefix + "_half_open_max_req", c.HalfOpenMaxReq,
	}
}

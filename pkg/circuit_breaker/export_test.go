package circuit_breaker

import "time"

func NewWithClock(cfg Config, now func() time.Time) CircuitBreaker {
	return newWithClock(cfg, now)
}

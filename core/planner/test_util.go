package planner

import "time"

// NewServiceMock returns a Service with a deterministic clock and signal TTL
// for tests.
func NewServiceMock(repo Repository, signalTTL time.Duration, now func() time.Time) *Service {
	return &Service{
		repo:      repo,
		signalTTL: signalTTL,
		signals:   make(map[string]time.Time),
		now:       now,
	}
}

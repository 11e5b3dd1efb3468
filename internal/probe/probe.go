// Package probe periodically checks that the Bookit backend answers.
package probe

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Pinger is anything that can tell whether the backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the outcome of the latest check.
type Status struct {
	Checked   bool
	Up        bool
	CheckedAt time.Time
	LastError string
}

// Service runs the checks and keeps the latest Status.
type Service struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	up       prometheus.Gauge
	now      func() time.Time

	mu     sync.RWMutex
	status Status
}

// NewService creates a probe checking p every interval. Each check is
// bounded by timeout.
func NewService(p Pinger, interval, timeout time.Duration, logger *zap.Logger, reg prometheus.Registerer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		pinger:   p,
		interval: interval,
		timeout:  timeout,
		logger:   logger.Named("probe"),
		up: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "bookit_backend_up",
			Help: "1 if the last backend probe succeeded, 0 otherwise.",
		}),
		now: time.Now,
	}
}

// Run checks once immediately and then every interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("backend probe is disabled")
		return
	}
	s.logger.Info("starting backend probe", zap.Duration("interval", s.interval))

	s.CheckOnce(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("backend probe shutting down")
			return
		case <-timer.C:
			s.CheckOnce(ctx)
			timer.Reset(s.interval)
		}
	}
}

// CheckOnce pings the backend, records the result and returns it. Changes
// between up and down are logged.
func (s *Service) CheckOnce(ctx context.Context) Status {
	checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	err := s.pinger.Ping(checkCtx)

	next := Status{Checked: true, Up: err == nil, CheckedAt: s.now()}
	if err != nil {
		next.LastError = err.Error()
	}

	s.mu.Lock()
	prev := s.status
	s.status = next
	s.mu.Unlock()

	if next.Up {
		s.up.Set(1)
	} else {
		s.up.Set(0)
	}

	switch {
	case next.Up && prev.Checked && !prev.Up:
		s.logger.Info("backend is reachable again")
	case !next.Up && (!prev.Checked || prev.Up):
		s.logger.Warn("backend is unreachable", zap.Error(err))
	}
	return next
}

// Status returns the latest check result.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

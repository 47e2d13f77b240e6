package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// HealthChecker is the storage capability polled by StorageProbe.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StatusReporter receives the outcome of every probe.
type StatusReporter interface {
	SetStorageUp(up bool)
}

// StorageProbe periodically pings storage, reports the result and logs state changes.
type StorageProbe struct {
	checker  HealthChecker
	reporter StatusReporter
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
	up     *bool
}

// NewStorageProbe constructs a probe. Non-positive intervals default to one second.
func NewStorageProbe(checker HealthChecker, reporter StatusReporter, interval time.Duration, logger *slog.Logger) *StorageProbe {
	if interval <= 0 {
		interval = time.Second
	}
	return &StorageProbe{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Start probes once immediately and then on every tick until Stop or ctx cancellation.
func (p *StorageProbe) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop waits for the probe loop to finish.
func (p *StorageProbe) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *StorageProbe) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *StorageProbe) probe(ctx context.Context) {
	err := p.checker.HealthCheck(ctx)
	if ctx.Err() != nil {
		return
	}
	up := err == nil
	p.reporter.SetStorageUp(up)

	p.mu.Lock()
	changed := p.up == nil || *p.up != up
	p.up = &up
	p.mu.Unlock()

	if !changed {
		return
	}
	if up {
		p.logger.Info("storage reachable")
		return
	}
	p.logger.Error("storage unreachable", slog.String("error", err.Error()))
}

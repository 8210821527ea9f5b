package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	computations uint64
	mu           sync.Mutex
	failures     map[string]uint64
}

func New() *Collector {
	return &Collector{failures: map[string]uint64{}}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordComputation counts one payroll computation. An empty reason marks success.
func (c *Collector) RecordComputation(reason string) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.computations, 1)
	if reason == "" {
		return
	}
	c.mu.Lock()
	c.failures[reason]++
	c.mu.Unlock()
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	failures := make(map[string]uint64, len(c.failures))
	for reason, count := range c.failures {
		failures[reason] = count
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         errs,
		"rateLimitedTotal":    limited,
		"avgDurationMs":       avg,
		"totalDurationMs":     totalMs,
		"computationsTotal":   atomic.LoadUint64(&c.computations),
		"computationFailures": failures,
	}
}

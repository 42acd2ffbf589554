package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"ayurvignana/internal/metrics"
)

// HealthProber reports the status of a dependency.
type HealthProber interface {
	Health(ctx context.Context) (string, error)
}

// ClassifierMonitor periodically probes the classification service.
// Failures are logged and exported as a gauge; they never block requests.
type ClassifierMonitor struct {
	prober   HealthProber
	interval time.Duration
	timeout  time.Duration

	mu        sync.RWMutex
	up        bool
	status    string
	checkedAt time.Time
}

// NewClassifierMonitor creates a new classifier monitor.
func NewClassifierMonitor(prober HealthProber, interval time.Duration) *ClassifierMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ClassifierMonitor{
		prober:   prober,
		interval: interval,
		timeout:  5 * time.Second,
	}
}

// Start begins the background probe loop. It returns when ctx is canceled.
func (m *ClassifierMonitor) Start(ctx context.Context) {
	log.Printf("Classifier monitor started (interval: %v)", m.interval)

	// Run immediately on start
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Classifier monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// Status returns the result of the latest probe.
func (m *ClassifierMonitor) Status() (up bool, status string, checkedAt time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.up, m.status, m.checkedAt
}

func (m *ClassifierMonitor) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status, err := m.prober.Health(probeCtx)
	up := err == nil
	if err != nil {
		status = "unreachable"
		log.Printf("Classifier monitor: health check failed: %v", err)
	}

	m.mu.Lock()
	wasUp, first := m.up, m.checkedAt.IsZero()
	m.up = up
	m.status = status
	m.checkedAt = time.Now()
	m.mu.Unlock()

	if up && (first || !wasUp) {
		log.Printf("Classifier monitor: classifier is %s", status)
	}
	metrics.SetClassifierUp(up)
}

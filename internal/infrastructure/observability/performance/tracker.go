package performance

import (
	"sync"
	"time"
)

// Tracker collects performance markers for completed and in-flight operations
type Tracker struct {
	mu         sync.RWMutex
	metrics    []Marker
	active     map[*Marker]struct{}
	config     *TrackerConfig
	slowAlerts []SlowOperation
}

// TrackerConfig controls retention and alerting behavior
type TrackerConfig struct {
	MaxMetrics        int           // Maximum completed markers retained
	MetricsRetention  time.Duration // How long completed markers are kept
	SlowOperationOver time.Duration // Operations slower than this raise an alert
	MaxAlerts         int           // Maximum retained slow-operation alerts
}

// DefaultTrackerConfig returns sensible tracker defaults
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMetrics:        1000,
		MetricsRetention:  time.Hour,
		SlowOperationOver: 250 * time.Millisecond,
		MaxAlerts:         100,
	}
}

// SlowOperation records an operation that exceeded the slow threshold
type SlowOperation struct {
	Operation string        `json:"operation"`
	Duration  time.Duration `json:"duration"`
	At        time.Time     `json:"at"`
}

// NewTracker creates a performance tracker
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		active: make(map[*Marker]struct{}),
		config: config,
	}
}

// StartOperation begins tracking a new operation
func (t *Tracker) StartOperation(operation string) *Marker {
	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
		Success:   true,
		Metadata:  make(map[string]any),
	}

	t.mu.Lock()
	t.active[marker] = struct{}{}
	t.mu.Unlock()

	return marker
}

// CompleteOperation finalizes a marker and records it
func (t *Tracker) CompleteOperation(marker *Marker) {
	marker.Complete()

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.active, marker)
	t.metrics = append(t.metrics, *marker)
	if len(t.metrics) > t.config.MaxMetrics {
		t.metrics = t.metrics[len(t.metrics)-t.config.MaxMetrics:]
	}

	if marker.Duration > t.config.SlowOperationOver {
		t.slowAlerts = append(t.slowAlerts, SlowOperation{
			Operation: marker.Operation,
			Duration:  marker.Duration,
			At:        marker.EndTime,
		})
		if len(t.slowAlerts) > t.config.MaxAlerts {
			t.slowAlerts = t.slowAlerts[len(t.slowAlerts)-t.config.MaxAlerts:]
		}
	}
}

// GetMetrics returns a copy of all retained completed markers
func (t *Tracker) GetMetrics() []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Marker, len(t.metrics))
	copy(out, t.metrics)
	return out
}

// GetRecentMetrics returns completed markers within the given window
func (t *Tracker) GetRecentMetrics(within time.Duration) []Marker {
	cutoff := time.Now().Add(-within)

	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Marker
	for _, m := range t.metrics {
		if m.EndTime.After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

// GetSlowOperations returns the retained slow-operation alerts
func (t *Tracker) GetSlowOperations() []SlowOperation {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]SlowOperation, len(t.slowAlerts))
	copy(out, t.slowAlerts)
	return out
}

// GetOverallStats summarizes tracked operations
func (t *Tracker) GetOverallStats() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var totalDuration time.Duration
	failures := 0
	for _, m := range t.metrics {
		totalDuration += m.Duration
		if !m.Success {
			failures++
		}
	}

	stats := map[string]any{
		"completedOperations": len(t.metrics),
		"activeOperations":    len(t.active),
		"failedOperations":    failures,
		"slowOperations":      len(t.slowAlerts),
	}
	if len(t.metrics) > 0 {
		stats["averageDuration"] = (totalDuration / time.Duration(len(t.metrics))).String()
	}
	return stats
}

// Cleanup drops completed markers older than the retention window
func (t *Tracker) Cleanup() {
	cutoff := time.Now().Add(-t.config.MetricsRetention)

	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.metrics[:0]
	for _, m := range t.metrics {
		if m.EndTime.After(cutoff) {
			kept = append(kept, m)
		}
	}
	t.metrics = kept
}

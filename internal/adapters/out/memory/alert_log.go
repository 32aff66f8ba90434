package memory

import (
	"context"
	"sync"

	"fleet/internal/core/domain/model/alert"
)

// AlertLog is an AlertSink that keeps alerts in memory. It backs the sink
// in the memory deployment and in tests.
type AlertLog struct {
	mu     sync.RWMutex
	alerts []alert.Alert
}

// NewAlertLog creates an empty log.
func NewAlertLog() *AlertLog {
	return &AlertLog{}
}

// Create appends the alert.
func (l *AlertLog) Create(ctx context.Context, a alert.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alerts = append(l.alerts, a)
	return nil
}

// All returns a copy of the alerts in arrival order.
func (l *AlertLog) All() []alert.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]alert.Alert(nil), l.alerts...)
}

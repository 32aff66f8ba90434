// Package alerts delivers alerts to the external sink off the request path.
package alerts

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/ports"
	"fleet/internal/metrics"
)

const (
	DefaultQueueSize = 256
	DefaultTimeout   = 5 * time.Second
)

// Dispatcher is a ports.AlertEmitter backed by a bounded queue and a single
// worker that forwards alerts to a ports.AlertSink.
//
// Emit never blocks: when the queue is full, or the dispatcher is closed, the
// alert is dropped and logged. Sink failures are logged and counted, never
// retried.
type Dispatcher struct {
	sink    ports.AlertSink
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan alert.Alert
	done   chan struct{}
}

var _ ports.AlertEmitter = (*Dispatcher)(nil)

// NewDispatcher starts a dispatcher. Non-positive queueSize and timeout fall
// back to the defaults.
func NewDispatcher(sink ports.AlertSink, logger *slog.Logger, queueSize int, timeout time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	d := &Dispatcher{
		sink:    sink,
		logger:  logger.With("component", "alert_dispatcher"),
		timeout: timeout,
		queue:   make(chan alert.Alert, queueSize),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Emit enqueues the alert.
func (d *Dispatcher) Emit(a alert.Alert) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(a, "dispatcher closed")
		return
	}

	select {
	case d.queue <- a:
	default:
		d.drop(a, "queue full")
	}
}

// Close stops accepting alerts and waits until the queued ones were handed to
// the sink, or until ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for a := range d.queue {
		d.deliver(a)
	}
}

func (d *Dispatcher) deliver(a alert.Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sink.Create(ctx, a); err != nil {
		metrics.AlertsTotal.WithLabelValues(string(a.Type), metrics.OutcomeFailed).Inc()
		d.logger.ErrorContext(ctx, "Alert delivery failed",
			"alert_id", a.ID, "type", string(a.Type), "error", err)
		return
	}
	metrics.AlertsTotal.WithLabelValues(string(a.Type), metrics.OutcomeDelivered).Inc()
}

func (d *Dispatcher) drop(a alert.Alert, reason string) {
	metrics.AlertsTotal.WithLabelValues(string(a.Type), metrics.OutcomeDropped).Inc()
	d.logger.Warn("Alert dropped", "alert_id", a.ID, "type", string(a.Type), "reason", reason)
}

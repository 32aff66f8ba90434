package commands

import (
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/metrics"
)

// publishStatusChanges emits the alerts for committed status changes.
// Emission never blocks and never fails the command.
func publishStatusChanges(emitter ports.AlertEmitter, events []order.StatusChanged) {
	for _, ev := range events {
		metrics.StatusTransitionsTotal.WithLabelValues(ev.To.String()).Inc()
		for _, a := range services.StatusChangeAlerts(ev) {
			emitter.Emit(a)
		}
	}
}

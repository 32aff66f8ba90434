package ports

import (
	"context"

	"fleet/internal/core/domain/model/alert"
)

// AlertSink persists alerts. It is owned by an external collaborator.
type AlertSink interface {
	Create(ctx context.Context, a alert.Alert) error
}

// AlertEmitter hands alerts off without blocking the caller. Implementations
// log delivery failures instead of returning them.
type AlertEmitter interface {
	Emit(a alert.Alert)
}

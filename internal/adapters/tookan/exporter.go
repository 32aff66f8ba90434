package tookan

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// RemoteTasks creates tasks in a remote Tookan account.
type RemoteTasks interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskCreated, error)
}

// Exporter pushes local orders to Tookan and records the job_id Tookan
// assigns under ports.MappingRemoteOrder, apart from the job_ids this service
// issues itself.
type Exporter struct {
	remote       RemoteTasks
	getOrder     queries.GetOrderQueryHandler
	findExternal queries.FindExternalIDQueryHandler
	reserve      commands.ReserveExternalIDCommandHandler
	bind         commands.BindExternalIDCommandHandler
	release      commands.ReleaseExternalIDCommandHandler
}

// NewExporter creates an Exporter.
func NewExporter(
	remote RemoteTasks,
	getOrder queries.GetOrderQueryHandler,
	findExternal queries.FindExternalIDQueryHandler,
	reserve commands.ReserveExternalIDCommandHandler,
	bind commands.BindExternalIDCommandHandler,
	release commands.ReleaseExternalIDCommandHandler,
) *Exporter {
	return &Exporter{
		remote:       remote,
		getOrder:     getOrder,
		findExternal: findExternal,
		reserve:      reserve,
		bind:         bind,
		release:      release,
	}
}

// ExportOrder creates the remote task and returns its job_id. The order is
// reserved before the remote call, so an order that is already exported or
// has an export in flight is rejected with errs.ErrAlreadyExists and no
// second task is created. The driver's fleet_id is sent when the driver is
// mapped.
//
// A failed remote call releases the reservation. When the remote task exists
// but its job_id cannot be recorded, the reservation is kept and the error
// names the job_id.
func (e *Exporter) ExportOrder(ctx context.Context, orderID string) (int64, error) {
	orderQuery, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return 0, err
	}
	view, err := e.getOrder.Handle(ctx, orderQuery)
	if err != nil {
		return 0, err
	}

	if jobID, bound, findErr := e.lookup(ctx, ports.MappingRemoteOrder, view.ID); findErr != nil {
		return 0, findErr
	} else if bound {
		return 0, errs.NewAlreadyExistsError("job_id", jobID)
	}

	var fleetID *int64
	if view.DriverID != nil {
		id, bound, findErr := e.lookup(ctx, ports.MappingDriver, *view.DriverID)
		if findErr != nil {
			return 0, findErr
		}
		if bound {
			fleetID = &id
		}
	}

	reservation, err := commands.NewReserveExternalIDCommand(ports.MappingRemoteOrder, view.ID)
	if err != nil {
		return 0, err
	}
	if err = e.reserve.Handle(ctx, reservation); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return 0, fmt.Errorf("export of order %s in progress: %w", view.ID, err)
		}
		return 0, err
	}

	created, err := e.remote.CreateTask(ctx, OrderToCreateTask(view, fleetID))
	if err != nil {
		if releaseErr := e.release.Handle(context.WithoutCancel(ctx), reservation); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
		return 0, fmt.Errorf("tookan export of order %s: %w", view.ID, err)
	}

	cmd, err := commands.NewBindExternalIDCommand(ports.MappingRemoteOrder, view.ID, created.JobID)
	if err != nil {
		return 0, err
	}
	if err = e.bind.Handle(context.WithoutCancel(ctx), cmd); err != nil {
		return 0, fmt.Errorf("record job_id %d of order %s: %w", created.JobID, view.ID, err)
	}
	return created.JobID, nil
}

func (e *Exporter) lookup(ctx context.Context, kind ports.MappingKind, localID string) (int64, bool, error) {
	query, err := queries.NewFindExternalIDQuery(kind, localID)
	if err != nil {
		return 0, false, err
	}
	return e.findExternal.Handle(ctx, query)
}

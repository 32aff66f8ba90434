package queries

import (
	"context"
	"errors"

	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// GetJobDetailsQueryHandler resolves a Tookan job_id through the ID mapping
// table and reads the order.
type GetJobDetailsQueryHandler struct {
	readers OrderReaderFactory
}

// NewGetJobDetailsQueryHandler creates a handler for job detail reads.
func NewGetJobDetailsQueryHandler(readers OrderReaderFactory) GetJobDetailsQueryHandler {
	return GetJobDetailsQueryHandler{readers: readers}
}

// Handle returns errs.ErrObjectNotFound for an unmapped job_id.
func (h GetJobDetailsQueryHandler) Handle(ctx context.Context, query GetJobDetailsQuery) (GetJobDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobDetailsQueryResponse{}, err
	}

	r := h.readers.Create()
	orderID, err := r.IDMappingRepository().FindLocal(ctx, ports.MappingOrder, query.JobID())
	if err != nil {
		return GetJobDetailsQueryResponse{}, err
	}
	o, err := r.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return GetJobDetailsQueryResponse{}, err
	}

	resp := GetJobDetailsQueryResponse{JobID: query.JobID(), Order: NewOrderView(o)}
	if driverID := o.DriverID(); driverID != nil {
		fleetID, findErr := r.IDMappingRepository().FindExternal(ctx, ports.MappingDriver, *driverID)
		switch {
		case findErr == nil:
			resp.FleetID = &fleetID
		case !errors.Is(findErr, errs.ErrObjectNotFound):
			return GetJobDetailsQueryResponse{}, findErr
		}
	}
	return resp, nil
}

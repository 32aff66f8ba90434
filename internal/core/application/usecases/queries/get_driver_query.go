package queries

import (
	"context"
	"errors"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves one driver.
type GetDriverQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query for the driver with the given ID.
func NewGetDriverQuery(driverID string) (GetDriverQuery, error) {
	if driverID == "" {
		return GetDriverQuery{}, errs.NewValueIsRequiredError("driverId")
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() string { return q.driverID }

// GetDriverQueryHandler reads a single driver.
type GetDriverQueryHandler struct {
	readers OrderReaderFactory
}

// NewGetDriverQueryHandler creates a handler for driver reads.
func NewGetDriverQueryHandler(readers OrderReaderFactory) GetDriverQueryHandler {
	return GetDriverQueryHandler{readers: readers}
}

// Handle returns errs.ErrObjectNotFound for an unknown driver.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}
	d, err := h.readers.Create().DriverRepository().Get(ctx, query.DriverID())
	if err != nil {
		return DriverView{}, err
	}
	return NewDriverView(d), nil
}

package queries

import (
	"context"

	"fleet/internal/core/domain/services"
)

// GetEligibleDriversQueryHandler filters all drivers through the dispatcher's
// hub rule.
//
// Example:
//
//	handler := NewGetEligibleDriversQueryHandler(readers)
//	query, _ := NewGetEligibleDriversQuery("ORD001")
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d drivers can serve the order\n", len(drivers))
type GetEligibleDriversQueryHandler struct {
	readers    OrderReaderFactory
	dispatcher services.OrderDispatcher
}

// NewGetEligibleDriversQueryHandler creates a handler for eligibility reads.
func NewGetEligibleDriversQueryHandler(readers OrderReaderFactory) GetEligibleDriversQueryHandler {
	return GetEligibleDriversQueryHandler{
		readers:    readers,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle returns eligible drivers ordered by ID.
// Returns errs.ErrObjectNotFound for an unknown order or store.
func (h GetEligibleDriversQueryHandler) Handle(ctx context.Context, query GetEligibleDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	r := h.readers.Create()
	o, err := r.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	store, err := r.StoreRepository().Get(ctx, o.StoreID())
	if err != nil {
		return nil, err
	}
	teams, err := r.TeamRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := r.DriverRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible, err := h.dispatcher.EligibleDrivers(o, store, teams, drivers)
	if err != nil {
		return nil, err
	}

	views := make([]DriverView, len(eligible))
	for i, d := range eligible {
		views[i] = NewDriverView(d)
	}
	return views, nil
}

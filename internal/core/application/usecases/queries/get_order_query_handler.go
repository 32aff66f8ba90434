package queries

import (
	"context"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	readers OrderReaderFactory
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(readers OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{readers: readers}
}

// Handle returns the order view. Returns errs.ErrObjectNotFound if absent.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.readers.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(o), nil
}

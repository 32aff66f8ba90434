package queries

import (
	"errors"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetEligibleDriversQueryIsNotConstructed = errors.New(
	"GetEligibleDriversQuery must be created via NewGetEligibleDriversQuery constructor",
)

// GetEligibleDriversQuery lists the drivers whose team serves the hub of an
// order's store.
type GetEligibleDriversQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetEligibleDriversQuery creates a query for the order with the given ID.
func NewGetEligibleDriversQuery(orderID string) (GetEligibleDriversQuery, error) {
	if orderID == "" {
		return GetEligibleDriversQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetEligibleDriversQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEligibleDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleDriversQueryIsNotConstructed)
}

func (q GetEligibleDriversQuery) OrderID() string { return q.orderID }

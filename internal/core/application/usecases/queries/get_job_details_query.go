package queries

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetJobDetailsQueryIsNotConstructed = errors.New(
	"GetJobDetailsQuery must be created via NewGetJobDetailsQuery constructor",
)

// GetJobDetailsQuery reads an order by its Tookan job_id.
type GetJobDetailsQuery struct {
	jobID int64

	guard guard.ConstructorGuard
}

// NewGetJobDetailsQuery creates a query for a positive job_id.
func NewGetJobDetailsQuery(jobID int64) (GetJobDetailsQuery, error) {
	if jobID <= 0 {
		return GetJobDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("job_id",
			fmt.Errorf("%d is not a positive id", jobID))
	}
	return GetJobDetailsQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobDetailsQueryIsNotConstructed)
}

func (q GetJobDetailsQuery) JobID() int64 { return q.jobID }

// GetJobDetailsQueryResponse is an order together with its external IDs.
// FleetID is nil when the order has no driver or the driver was never
// mapped to a Tookan agent.
type GetJobDetailsQueryResponse struct {
	JobID   int64
	FleetID *int64
	Order   OrderView
}

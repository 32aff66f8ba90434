package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/pkg/guard"
)

var ErrCheckPointQueryIsNotConstructed = errors.New(
	"CheckPointQuery must be created via NewCheckPointQuery constructor",
)

// CheckPointQuery classifies a point against every zone of one kind.
type CheckPointQuery struct {
	point kernel.Point
	kind  zone.Kind

	guard guard.ConstructorGuard
}

// NewCheckPointQuery validates the coordinates and the zone kind.
func NewCheckPointQuery(lat, lng float64, kind zone.Kind) (CheckPointQuery, error) {
	loc, locErr := kernel.NewLocation(lat, lng, "")
	if err := errors.Join(locErr, kind.Validate()); err != nil {
		return CheckPointQuery{}, err
	}
	return CheckPointQuery{point: loc.Point(), kind: kind, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckPointQuery) Validate() error {
	return q.guard.Validate(ErrCheckPointQueryIsNotConstructed)
}

func (q CheckPointQuery) Point() kernel.Point { return q.point }
func (q CheckPointQuery) Kind() zone.Kind     { return q.kind }

// CheckPointResponse lists all containing zones in storage order.
type CheckPointResponse struct {
	IsInside bool
	Zones    []ZoneView
}

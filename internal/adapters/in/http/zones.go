package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/zone"

	"github.com/labstack/echo/v4"
)

// UpdateDriverLocation handles PUT /api/v1/drivers/:id/location.
func (s *Server) UpdateDriverLocation(c echo.Context) error {
	var req LocationReport
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	loc, err := req.location()
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewUpdateDriverLocationCommand(c.Param("id"), loc)
	if err != nil {
		return s.fail(c, err)
	}
	if req.ReportedAt != nil {
		cmd = cmd.WithReportedAt(*req.ReportedAt)
	}

	result, err := s.handlers.UpdateLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, LocationResult{
		Inside:  zonesOf(result.Inside),
		Entered: zonesOf(result.Entered),
	})
}

// CheckPoint handles POST /api/v1/zones/check.
func (s *Server) CheckPoint(c echo.Context) error {
	var req PointCheck
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewCheckPointQuery(*req.Lat, *req.Lng, zone.Kind(req.Kind))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.CheckPoint.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, PointCheckResult{IsInside: result.IsInside, Zones: toZones(result.Zones)})
}

func zonesOf(zones []zone.Zone) []Zone {
	views := make([]queries.ZoneView, len(zones))
	for i, z := range zones {
		views[i] = queries.NewZoneView(z)
	}
	return toZones(views)
}

package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"

	"github.com/labstack/echo/v4"
)

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(c echo.Context) error {
	var req NewStore
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	loc, err := req.Location.location()
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateStoreCommand(req.ID, req.Name, loc, req.HubID)
	if err != nil {
		return s.fail(c, err)
	}

	store, err := s.handlers.CreateStore.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Store{
		ID:       store.ID,
		Name:     store.Name,
		Location: LocationResponse{Lat: store.Location.Lat(), Lng: store.Location.Lng(), Address: store.Location.Address()},
		HubID:    store.HubID,
	})
}

// CreateTeam handles POST /api/v1/teams.
func (s *Server) CreateTeam(c echo.Context) error {
	var req NewTeam
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateTeamCommand(req.ID, req.Name, req.HubID)
	if err != nil {
		return s.fail(c, err)
	}

	team, err := s.handlers.CreateTeam.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Team{ID: team.ID, Name: team.Name, HubID: team.HubID})
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(c echo.Context) error {
	var req NewZone
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	points := make([]kernel.Point, len(req.Vertices))
	for i, v := range req.Vertices {
		points[i] = kernel.Point{Lat: *v.Lat, Lng: *v.Lng}
	}
	polygon, err := zone.NewPolygon(points)
	if err != nil {
		return s.fail(c, err)
	}

	var cmd commands.CreateZoneCommand
	if zone.Kind(req.Kind) == zone.KindGeofence {
		cmd, err = commands.NewGeofenceCommand(req.ID, req.Name, polygon, req.Color, req.HubID)
	} else {
		cmd, err = commands.NewExclusionZoneCommand(req.ID, req.Name, polygon, zone.ExclusionType(req.ExclusionType))
	}
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateZone.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, zonesOf([]zone.Zone{created})[0])
}

// CreateDriver handles POST /api/v1/drivers. The driver gets a fleet_id in
// the same transaction.
func (s *Server) CreateDriver(c echo.Context) error {
	var req NewDriver
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	var vehicleType driver.VehicleType
	if req.VehicleType != "" {
		parsed, err := driver.ParseVehicleType(req.VehicleType)
		if err != nil {
			return s.fail(c, err)
		}
		vehicleType = parsed
	}

	cmd := commands.NewCreateDriverCommand(req.ID, driver.Profile{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		License:            req.License,
		VehicleType:        vehicleType,
		VehicleDescription: req.VehicleDescription,
		TeamID:             req.TeamID,
		VehicleID:          req.VehicleID,
	})

	result, err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd.WithExternalID())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedDriver{
		Driver:  toDriver(queries.NewDriverView(result.Driver)),
		FleetID: result.ExternalID,
	})
}

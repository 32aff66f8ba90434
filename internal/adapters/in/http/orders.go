package http

import (
	"errors"
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	details, err := req.details()
	if err != nil {
		return s.fail(c, err)
	}
	initial := order.Unassigned
	if req.Status != "" {
		if initial, err = order.ParseStatus(req.Status); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(req.ID, details, initial, req.DriverID, req.VehicleID)
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderView(created.Order)))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	var req StatusChange
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSetOrderStatusCommand(c.Param("id"), status, req.Version)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// AssignDriver handles PUT /api/v1/orders/:id/assignment.
func (s *Server) AssignDriver(c echo.Context) error {
	var req Assignment
	if err := decode(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignDriverCommand(c.Param("id"), req.DriverID, req.VehicleID, req.Version, req.Override)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// GetEligibleDrivers handles GET /api/v1/orders/:id/eligible-drivers.
func (s *Server) GetEligibleDrivers(c echo.Context) error {
	query, err := queries.NewGetEligibleDriversQuery(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	drivers, err := s.handlers.EligibleDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return c.JSON(http.StatusOK, response)
}

// ExportOrder handles POST /api/v1/orders/:id/tookan-export.
func (s *Server) ExportOrder(c echo.Context) error {
	if s.handlers.TookanExporter == nil {
		return s.fail(c, errors.New("tookan export is not configured"))
	}

	orderID := c.Param("id")
	jobID, err := s.handlers.TookanExporter.ExportOrder(c.Request().Context(), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Export{OrderID: orderID, JobID: jobID})
}

func (r NewOrder) details() (order.Details, error) {
	origin, originErr := r.Origin.location()
	destination, destErr := r.Destination.location()
	if err := errors.Join(originErr, destErr); err != nil {
		return order.Details{}, err
	}

	items := make([]order.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.Item{Name: it.Name, Quantity: it.Quantity}
	}

	return order.Details{
		Title:         r.Title,
		Description:   r.Description,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		PickupName:    r.PickupName,
		PickupPhone:   r.PickupPhone,
		Origin:        origin,
		Destination:   destination,
		Priority:      order.Priority(r.Priority),
		Type:          order.Type(r.OrderType),
		StoreID:       r.StoreID,
		TeamID:        r.TeamID,
		Items:         items,
	}, nil
}

func (l Location) location() (kernel.Location, error) {
	var lat, lng float64
	if l.Lat != nil {
		lat = *l.Lat
	}
	if l.Lng != nil {
		lng = *l.Lng
	}
	return kernel.NewLocation(lat, lng, l.Address)
}

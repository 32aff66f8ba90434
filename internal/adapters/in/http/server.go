package http

import (
	"log/slog"
	"net/http"

	"fleet/internal/adapters/tookan"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the application handlers behind the HTTP routes.
type Handlers struct {
	// Command handlers
	CreateOrder    commands.CreateOrderCommandHandler
	SetOrderStatus commands.SetOrderStatusCommandHandler
	AssignDriver   commands.AssignDriverCommandHandler
	UpdateLocation commands.UpdateDriverLocationCommandHandler
	CreateStore    commands.CreateStoreCommandHandler
	CreateTeam     commands.CreateTeamCommandHandler
	CreateZone     commands.CreateZoneCommandHandler
	CreateDriver   commands.CreateDriverCommandHandler

	// Query handlers
	GetOrder        queries.GetOrderQueryHandler
	EligibleDrivers queries.GetEligibleDriversQueryHandler
	CheckPoint      queries.CheckPointQueryHandler

	// Tookan integration
	Tookan         *tookan.Adapter
	TookanExporter *tookan.Exporter
}

// Server serves the admin API and the inbound Tookan API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers     Handlers
	tookanAPIKey string
	logger       *slog.Logger
}

// NewServer creates a server. When tookanAPIKey is not empty inbound Tookan
// calls must carry it.
func NewServer(h Handlers, tookanAPIKey string, logger *slog.Logger) *Server {
	return &Server{
		handlers:     h,
		tookanAPIKey: tookanAPIKey,
		logger:       logger.With("component", "http_server"),
	}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server, v *validate.Validator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = v

	e.Use(middleware.Recover())
	e.Use(observe(s.logger))

	s.Register(e)
	return e
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.SetOrderStatus)
	api.PUT("/orders/:id/assignment", s.AssignDriver)
	api.GET("/orders/:id/eligible-drivers", s.GetEligibleDrivers)
	api.POST("/orders/:id/tookan-export", s.ExportOrder)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id/location", s.UpdateDriverLocation)
	api.POST("/stores", s.CreateStore)
	api.POST("/teams", s.CreateTeam)
	api.POST("/zones", s.CreateZone)
	api.POST("/zones/check", s.CheckPoint)

	tk := e.Group("/tookan/v2")
	tk.POST("/create_task", s.TookanCreateTask)
	tk.POST("/add_agent", s.TookanAddAgent)
	tk.POST("/edit_agent", s.TookanEditAgent)
	tk.POST("/assign_task", s.TookanAssignTask)
	tk.POST("/get_job_details", s.TookanGetJobDetails)
}

// fail writes err as an admin error body.
func (s *Server) fail(c echo.Context, err error) error {
	code := StatusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", "route", c.Path(), "error", err)
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

// decode binds the request body into dst and validates it. A malformed body
// is reported as an invalid "body" value.
func decode(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(dst)
}

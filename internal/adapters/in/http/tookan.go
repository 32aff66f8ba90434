package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fleet/internal/adapters/tookan"
	"fleet/internal/metrics"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errUnauthorized = errors.New("api_key does not match")

// TookanCreateTask handles POST /tookan/v2/create_task.
func (s *Server) TookanCreateTask(c echo.Context) error {
	return serveTookan(s, c, "create_task",
		func(r tookan.CreateTaskRequest) string { return r.APIKey }, s.handlers.Tookan.CreateTask)
}

// TookanAddAgent handles POST /tookan/v2/add_agent.
func (s *Server) TookanAddAgent(c echo.Context) error {
	return serveTookan(s, c, "add_agent",
		func(r tookan.AgentRequest) string { return r.APIKey }, s.handlers.Tookan.AddAgent)
}

// TookanEditAgent handles POST /tookan/v2/edit_agent.
func (s *Server) TookanEditAgent(c echo.Context) error {
	return serveTookan(s, c, "edit_agent",
		func(r tookan.AgentRequest) string { return r.APIKey }, s.handlers.Tookan.EditAgent)
}

// TookanAssignTask handles POST /tookan/v2/assign_task.
func (s *Server) TookanAssignTask(c echo.Context) error {
	return serveTookan(s, c, "assign_task",
		func(r tookan.AssignTaskRequest) string { return r.APIKey }, s.handlers.Tookan.AssignTask)
}

// TookanGetJobDetails handles POST /tookan/v2/get_job_details.
func (s *Server) TookanGetJobDetails(c echo.Context) error {
	return serveTookan(s, c, "get_job_details",
		func(r tookan.GetJobDetailsRequest) string { return r.APIKey }, s.handlers.Tookan.GetJobDetails)
}

// serveTookan decodes a Tookan payload, checks its api_key and replies with
// the {status, message, data} envelope. The envelope status mirrors the HTTP
// status code.
func serveTookan[Req, Resp any](
	s *Server,
	c echo.Context,
	operation string,
	apiKey func(Req) string,
	run func(context.Context, Req) (Resp, error),
) error {
	start := time.Now()

	var req Req
	var data any
	err := c.Bind(&req)
	if err != nil {
		err = errs.NewValueIsInvalidErrorWithCause("body", err)
	} else if err = s.authorize(apiKey(req)); err == nil {
		data, err = run(c.Request().Context(), req)
	}

	code, message, result := http.StatusOK, "Successful", "ok"
	if err != nil {
		code, message, result = tookanStatus(err), err.Error(), "error"
		data = struct{}{}
		if code == http.StatusInternalServerError {
			s.logger.Error("tookan request failed", "operation", operation, "error", err)
		}
	}

	metrics.TookanRequestsTotal.WithLabelValues("inbound", operation, result).Inc()
	metrics.TookanRequestDuration.WithLabelValues("inbound", operation).Observe(time.Since(start).Seconds())
	return c.JSON(code, tookan.Response{Status: code, Message: message, Data: data})
}

func (s *Server) authorize(apiKey string) error {
	if apiKey == "" {
		return errs.NewValueIsRequiredError("api_key")
	}
	if s.tookanAPIKey != "" && apiKey != s.tookanAPIKey {
		return errUnauthorized
	}
	return nil
}

func tookanStatus(err error) int {
	if errors.Is(err, errUnauthorized) {
		return http.StatusUnauthorized
	}
	return StatusOf(err)
}

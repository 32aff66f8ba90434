// Package tookanclient calls the Tookan dispatch API.
package tookanclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fleet/internal/adapters/tookan"
	"fleet/internal/metrics"

	"github.com/cenkalti/backoff/v4"
)

// Defaults applied to zero Config fields.
const (
	DefaultBaseURL         = "https://api.tookanapp.com"
	DefaultTimeout         = 10 * time.Second
	DefaultMaxAttempts     = 3
	DefaultInitialInterval = 200 * time.Millisecond
)

// Config configures a Client.
type Config struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	MaxAttempts     int
	InitialInterval time.Duration
}

// APIError is a reply whose envelope status is not 200. It is never retried.
type APIError struct {
	Operation string
	Status    int
	Message   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tookan %s: status %d: %s", e.Operation, e.Status, e.Message)
}

// Client is a Tookan API client. Each attempt is bounded by Config.Timeout;
// transport errors and 5xx replies are retried with exponential backoff.
type Client struct {
	baseURL         string
	apiKey          string
	timeout         time.Duration
	maxAttempts     int
	initialInterval time.Duration
	http            *http.Client
	logger          *slog.Logger
}

// New creates a Client.
func New(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = DefaultInitialInterval
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:          cfg.APIKey,
		timeout:         cfg.Timeout,
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		http:            httpClient,
		logger:          logger.With("component", "tookan_client"),
	}
}

// CreateTask creates a remote task.
func (c *Client) CreateTask(ctx context.Context, req tookan.CreateTaskRequest) (tookan.TaskCreated, error) {
	req.APIKey = c.apiKey
	return call[tookan.TaskCreated](ctx, c, "create_task", req)
}

// AddAgent registers a remote agent.
func (c *Client) AddAgent(ctx context.Context, req tookan.AgentRequest) (tookan.AgentSaved, error) {
	req.APIKey = c.apiKey
	return call[tookan.AgentSaved](ctx, c, "add_agent", req)
}

// EditAgent updates a remote agent.
func (c *Client) EditAgent(ctx context.Context, req tookan.AgentRequest) (tookan.AgentSaved, error) {
	req.APIKey = c.apiKey
	return call[tookan.AgentSaved](ctx, c, "edit_agent", req)
}

// AssignTask assigns a remote task to an agent.
func (c *Client) AssignTask(ctx context.Context, req tookan.AssignTaskRequest) (tookan.TaskAssigned, error) {
	req.APIKey = c.apiKey
	return call[tookan.TaskAssigned](ctx, c, "assign_task", req)
}

// GetJobDetails reads a remote task.
func (c *Client) GetJobDetails(ctx context.Context, req tookan.GetJobDetailsRequest) (tookan.TaskDetails, error) {
	req.APIKey = c.apiKey
	return call[tookan.TaskDetails](ctx, c, "get_job_details", req)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call[T any](ctx context.Context, c *Client, operation string, payload any) (T, error) {
	var out T

	body, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("tookan %s: encode request: %w", operation, err)
	}

	start := time.Now()
	attempt := 0
	op := func() error {
		attempt++
		env, attemptErr := c.post(ctx, operation, body)
		if attemptErr != nil {
			return attemptErr
		}
		if env.Status != http.StatusOK {
			return backoff.Permanent(&APIError{Operation: operation, Status: env.Status, Message: env.Message})
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil
		}
		if decodeErr := json.Unmarshal(env.Data, &out); decodeErr != nil {
			return backoff.Permanent(fmt.Errorf("tookan %s: decode data: %w", operation, decodeErr))
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying tookan request", "operation", operation, "attempt", attempt, "wait", wait, "error", err)
	}

	err = backoff.RetryNotify(op, c.policy(ctx), notify)

	result := "ok"
	if err != nil {
		result = "error"
		c.logger.Error("tookan request failed", "operation", operation, "attempts", attempt, "error", err)
	}
	metrics.TookanRequestsTotal.WithLabelValues("outbound", operation, result).Inc()
	metrics.TookanRequestDuration.WithLabelValues("outbound", operation).Observe(time.Since(start).Seconds())
	return out, err
}

func (c *Client) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)
}

// post performs one attempt. Transport errors and 5xx replies are returned
// as retryable errors; everything else is permanent.
func (c *Client) post(ctx context.Context, operation string, body []byte) (envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/"+operation, bytes.NewReader(body))
	if err != nil {
		return envelope{}, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("tookan %s: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("tookan %s: read reply: %w", operation, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return envelope{}, fmt.Errorf("tookan %s: http %d", operation, resp.StatusCode)
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return envelope{}, backoff.Permanent(fmt.Errorf("tookan %s: http %d: decode reply: %w", operation, resp.StatusCode, err))
	}
	if env.Status == 0 {
		env.Status = resp.StatusCode
	}
	return env, nil
}

// IsAPIError reports whether err is a non-200 Tookan reply.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Package alert defines the notifications raised by order status changes and
// driver zone entries. Alerts are produced here and persisted by an external
// sink; this core never reads them back.
package alert

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Type classifies an alert.
type Type string

const (
	TypeStatusChanged Type = "Status Changed"
	TypeOrderFailed   Type = "Order Failed"
	TypeZoneEntered   Type = "Entered Exclusion Zone"
)

// Priority ranks an alert for operators.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Validate checks the priority against the closed set.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a known alert priority", string(p)))
	}
}

// EntityKind names what an alert refers to.
type EntityKind string

const (
	EntityOrder  EntityKind = "order"
	EntityDriver EntityKind = "driver"
	EntityZone   EntityKind = "zone"
)

// Related points an alert to the entity it is about.
type Related struct {
	Kind EntityKind
	ID   string
}

// Alert is an immutable notification record.
type Alert struct {
	ID        string
	Type      Type
	Message   string
	Priority  Priority
	Related   *Related
	Timestamp time.Time
}

// New creates an alert with a fresh identifier.
func New(alertType Type, message string, priority Priority, related *Related, at time.Time) (Alert, error) {
	var msgErr error
	if message == "" {
		msgErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(msgErr, priority.Validate()); err != nil {
		return Alert{}, err
	}
	return Alert{
		ID:        kernel.NewID(),
		Type:      alertType,
		Message:   message,
		Priority:  priority,
		Related:   related,
		Timestamp: at,
	}, nil
}

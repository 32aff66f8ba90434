package order

import (
	"fmt"
	"strings"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Nominal flow:
//
//	Unassigned ──> Assigned ──> At Store ──> Picked Up ──> In Progress ──┬──> Successful
//	                                                                     └──> Failed
//
// Cancelled is reachable only by override. None of the arrows are enforced:
// dispatchers may set any status directly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Unassigned
	Assigned
	AtStore
	PickedUp
	InProgress
	Successful
	Failed
	Cancelled
)

var statusNames = map[Status]string{
	Unassigned: "Unassigned",
	Assigned:   "Assigned",
	AtStore:    "At Store",
	PickedUp:   "Picked Up",
	InProgress: "In Progress",
	Successful: "Successful",
	Failed:     "Failed",
	Cancelled:  "Cancelled",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Unassigned, Assigned, AtStore, PickedUp, InProgress, Successful, Failed, Cancelled}
}

// ParseStatus resolves a display name such as "At Store". Matching ignores case
// and surrounding whitespace.
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	for s, n := range statusNames {
		if strings.EqualFold(n, trimmed) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", name))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the nominal flow.
func (s Status) IsTerminal() bool {
	return s == Successful || s == Failed || s == Cancelled
}

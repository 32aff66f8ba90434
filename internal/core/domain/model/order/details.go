package order

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Priority ranks orders for dispatchers.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Validate checks the priority against the closed set.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a known priority", string(p)))
	}
}

// Type tells whether the driver collects from or delivers to the customer.
type Type string

const (
	TypePickup   Type = "Pickup"
	TypeDelivery Type = "Delivery"
)

// Validate checks the order type against the closed set.
func (t Type) Validate() error {
	switch t {
	case TypePickup, TypeDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a known order type", string(t)))
	}
}

// Item is a line of the order.
type Item struct {
	Name     string
	Quantity int
}

// ActivityEntry is one record of the activity log.
type ActivityEntry struct {
	Status    Status
	Timestamp time.Time
}

// Details holds the descriptive part of an order: who, where and what.
// Empty Priority and Type default to Medium and Delivery.
type Details struct {
	Title         string
	Description   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PickupName    string
	PickupPhone   string
	Origin        kernel.Location
	Destination   kernel.Location
	Priority      Priority
	Type          Type
	StoreID       string
	TeamID        *string
	Items         []Item
}

func (d *Details) normalize() error {
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Type == "" {
		d.Type = TypeDelivery
	}

	var itemErrs []error
	for i, item := range d.Items {
		if item.Name == "" {
			itemErrs = append(itemErrs, errs.NewValueIsRequiredError(fmt.Sprintf("orderItems[%d].name", i)))
		}
		if item.Quantity <= 0 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("orderItems[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			))
		}
	}

	return errors.Join(
		requireText("title", d.Title),
		requireText("storeId", d.StoreID),
		d.Origin.Validate(),
		d.Destination.Validate(),
		d.Priority.Validate(),
		d.Type.Validate(),
		errors.Join(itemErrs...),
	)
}

func (d Details) clone() Details {
	c := d
	c.TeamID = cloneString(d.TeamID)
	c.Items = append([]Item(nil), d.Items...)
	return c
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes for generated entity IDs. Seeded data uses short
// human-assigned IDs such as "D001" or "ORD001"; generated IDs only need to be
// unique and recognisable.
const (
	OrderIDPrefix  = "ORD-"
	DriverIDPrefix = "D-"
)

// NewOrderID generates a unique order identifier.
func NewOrderID() string {
	return OrderIDPrefix + shortUUID()
}

// NewDriverID generates a unique driver identifier.
func NewDriverID() string {
	return DriverIDPrefix + shortUUID()
}

// NewID generates an unprefixed unique identifier (used for alerts).
func NewID() string {
	return uuid.NewString()
}

func shortUUID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

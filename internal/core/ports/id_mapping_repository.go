package ports

import (
	"context"
)

// MappingKind is the namespace of an ID mapping.
type MappingKind string

const (
	// MappingOrder holds the job_ids this service issues to Tookan clients.
	MappingOrder MappingKind = "order"
	// MappingDriver holds the fleet_ids this service issues.
	MappingDriver MappingKind = "driver"
	// MappingRemoteOrder holds the job_ids a remote Tookan account issued for
	// exported orders. They never share a namespace with MappingOrder.
	MappingRemoteOrder MappingKind = "remote_order"
)

// MappingKinds lists every mapping namespace.
func MappingKinds() []MappingKind {
	return []MappingKind{MappingOrder, MappingDriver, MappingRemoteOrder}
}

// IDMappingRepository is the persisted bidirectional table between local
// string IDs and Tookan's integer job_id / fleet_id. Both directions are
// unique per kind.
//
// A local ID may be reserved before its external ID is known. A reserved
// local ID has no external ID: FindExternal reports it as not found, and
// Ensure and Reserve refuse it with errs.ErrAlreadyExists.
type IDMappingRepository interface {
	// Ensure returns the external ID bound to localID, allocating the next free
	// integer when none exists yet.
	Ensure(ctx context.Context, kind MappingKind, localID string) (int64, error)

	// Bind records an externally assigned ID for localID, completing a
	// reservation when one is held. Binding the same pair twice is a no-op;
	// binding over an existing mapping of either side fails with
	// errs.ErrAlreadyExists.
	Bind(ctx context.Context, kind MappingKind, localID string, externalID int64) error

	// Reserve claims localID without an external ID. It fails with
	// errs.ErrAlreadyExists when localID is already reserved or bound.
	Reserve(ctx context.Context, kind MappingKind, localID string) error

	// Release drops a reservation of localID. Bound mappings and unknown IDs
	// are left alone.
	Release(ctx context.Context, kind MappingKind, localID string) error

	// FindExternal returns the external ID of localID or errs.ErrObjectNotFound.
	FindExternal(ctx context.Context, kind MappingKind, localID string) (int64, error)

	// FindLocal returns the local ID of externalID or errs.ErrObjectNotFound.
	FindLocal(ctx context.Context, kind MappingKind, externalID int64) (string, error)
}

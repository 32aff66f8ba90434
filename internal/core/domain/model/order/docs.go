// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding customer, route, assignment and history
//   - Status: the lifecycle states and their display names
//   - ActivityEntry: one append-only record of a status transition
//   - StatusChanged: the domain event raised on every effective transition
//
// Key business rules:
//   - A new order starts with a single activity entry for its initial status
//   - Setting the current status again is a no-op: no entry, no event
//   - Any other status may be set directly (administrative override); the nominal
//     flow is Unassigned -> Assigned -> At Store -> Picked Up -> In Progress ->
//     Successful | Failed
//   - Assigning a driver to an Unassigned order also moves it to Assigned, with a
//     single activity entry
//   - Repeating an identical assignment changes nothing
//   - The last activity entry always carries the current status and entry
//     timestamps never decrease
//
// The aggregate carries the persisted version used for optimistic concurrency;
// repositories advance it after every successful write.
package order

// Package services provides domain services that work across aggregates of the
// fleet dispatch core.
//
// The package includes:
//   - OrderDispatcher: hub-based driver eligibility and driver/vehicle assignment
//   - GeofenceEngine: planar point-in-polygon classification against zones
//   - ZoneEntryTracker: per-driver memory that turns containment into entry events
//   - NearestStore: store resolution for orders that arrive without one
//   - StatusChangeAlerts and ZoneEntryAlert: the alert rules for state changes
//
// Everything except ZoneEntryTracker is pure and holds no state.
package services

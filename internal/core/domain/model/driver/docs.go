// Package driver provides the Driver aggregate for the fleet dispatch system.
//
// The package includes:
//   - Driver: the aggregate root holding identity, contact profile, availability,
//     team membership and the last reported location
//   - VehicleType: the closed set of transport kinds shared with Tookan
//
// Key business rules:
//   - Drivers must have an identifier and a name
//   - Location and status change independently of orders
//   - A driver belongs to at most one team; hub eligibility is derived from it
//   - Location updates never move backwards in time
package driver

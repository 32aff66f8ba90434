// Package kernel provides core domain primitives shared by the fleet dispatch model.
//
// The package includes:
//   - Point: a raw latitude/longitude pair used by planar geometry
//   - Location: a validated point with an optional address
//   - ID helpers: generators for order, driver and alert identifiers
//
// Locations are immutable value objects guarded against zero-value use.
// Entity identifiers are opaque strings; nothing in the system derives meaning
// from their characters.
package kernel

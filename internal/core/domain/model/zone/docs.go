// Package zone models the polygons drivers are checked against: geofences
// (tracked inclusion regions with a display color) and exclusion zones
// (No-go or Slow-down regions).
//
// Coordinates are treated as planar with longitude as x and latitude as y.
// Polygons need at least three vertices and are assumed simple; self
// intersection is not detected and containment for such polygons follows
// whatever the even-odd rule yields.
package zone

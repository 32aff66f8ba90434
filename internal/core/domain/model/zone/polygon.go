package zone

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// MinVertices is the smallest vertex count of a usable polygon.
const MinVertices = 3

// ErrPolygonIsNotConstructed is returned when using a zero value Polygon.
var ErrPolygonIsNotConstructed = errors.New("Polygon must be created via NewPolygon constructor")

// Polygon is an ordered, implicitly closed ring of vertices.
type Polygon struct {
	vertices []kernel.Point
	guard    guard.ConstructorGuard
}

// NewPolygon validates the vertex count and coordinate ranges.
//
// Example:
//
//	sandton, _ := zone.NewPolygon([]kernel.Point{
//	    {Lat: -26.09, Lng: 28.04},
//	    {Lat: -26.09, Lng: 28.07},
//	    {Lat: -26.12, Lng: 28.07},
//	    {Lat: -26.12, Lng: 28.04},
//	})
func NewPolygon(vertices []kernel.Point) (Polygon, error) {
	if len(vertices) < MinVertices {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("vertices",
			fmt.Errorf("polygon needs at least %d vertices, got %d", MinVertices, len(vertices)))
	}

	var rangeErrs []error
	for i, v := range vertices {
		if v.Lat < kernel.LatitudeMin || v.Lat > kernel.LatitudeMax {
			rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError(fmt.Sprintf("vertices[%d].lat", i), v.Lat, kernel.LatitudeMin, kernel.LatitudeMax))
		}
		if v.Lng < kernel.LongitudeMin || v.Lng > kernel.LongitudeMax {
			rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError(fmt.Sprintf("vertices[%d].lng", i), v.Lng, kernel.LongitudeMin, kernel.LongitudeMax))
		}
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return Polygon{}, err
	}

	return Polygon{
		vertices: append([]kernel.Point(nil), vertices...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Polygon was created with NewPolygon.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the ring.
func (p Polygon) Vertices() []kernel.Point {
	return append([]kernel.Point(nil), p.vertices...)
}

// Contains reports whether pt lies inside the polygon using even-odd ray
// casting towards +x.
//
// Boundary rule: an edge counts for a crossing when (yi > y) != (yj > y), so an
// edge is half-open in y. Points on a bottom or left edge usually test inside,
// points on a top or right edge usually test outside, and vertices follow the
// same rule. Polygons with fewer than three vertices contain nothing.
func (p Polygon) Contains(pt kernel.Point) bool {
	n := len(p.vertices)
	if n < MinVertices {
		return false
	}

	x, y := pt.Lng, pt.Lat
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p.vertices[i].Lng, p.vertices[i].Lat
		xj, yj := p.vertices[j].Lng, p.vertices[j].Lat

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities, commands and queries to tell constructed instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error and the guarded object was not constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether an object was built through its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	var ErrPolygonNotConstructed = errors.New("Polygon must be created via NewPolygon")
//
//	type Polygon struct {
//	    vertices []kernel.Point
//	    guard    guard.ConstructorGuard
//	}
//
//	func (p Polygon) Validate() error {
//	    return p.guard.Validate(ErrPolygonNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

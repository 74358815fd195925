// Package guard provides the ConstructorGuard marker used by commands, queries and
// value objects to tell constructor-built values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created through their
// constructor. The zero value fails validation.
//
// Example usage:
//
//	var ErrImportOrdersCommandIsNotConstructed = errors.New("ImportOrdersCommand must be created via NewImportOrdersCommand")
//
//	type ImportOrdersCommand struct {
//	    records []order.Record
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ImportOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// owner was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

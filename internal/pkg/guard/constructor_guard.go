// Package guard provides the constructor guard pattern used by domain value
// objects and commands to reject zero-value instances that bypassed their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. A zero-value struct embedding a guard
// fails validation because the internal flag is only set by NewConstructorGuard.
//
// Example usage:
//
//	type Premium struct {
//	    amount int64
//	    guard  ConstructorGuard
//	}
//
//	func NewPremium(amount int64) (Premium, error) {
//	    if amount < 0 {
//	        return Premium{}, errors.New("amount cannot be negative")
//	    }
//	    return Premium{amount: amount, guard: NewConstructorGuard()}, nil
//	}
//
//	func (p Premium) Validate() error {
//	    return p.guard.Validate(ErrPremiumNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

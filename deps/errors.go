package deps

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved matches any UnresolvedError via errors.Is.
	ErrUnresolved = errors.New("dependency not resolved")
	// ErrEncapsulation matches any EncapsulationError via errors.Is.
	ErrEncapsulation = errors.New("resolved member is publicly writable")
	// ErrInvalidSlot is returned for slots not built with Resolve.
	ErrInvalidSlot = errors.New("slot not declared with Resolve")
)

// UnresolvedError means a required slot found no binding anywhere in the
// container chain.
type UnresolvedError struct {
	Owner  string
	Member string
	Key    Key
}

func (e UnresolvedError) Error() string {
	return fmt.Sprintf("could not resolve dependency %s for %s.%s", e.Key.String(), e.Owner, e.Member)
}

func (e UnresolvedError) Is(target error) bool { return target == ErrUnresolved }

// EncapsulationError means a resolved slot points at an exported member,
// which ordinary code could overwrite after injection, or its member name
// does not identify the field it writes. Reason is empty for exported names.
type EncapsulationError struct {
	Owner  string
	Member string
	Reason string
}

func (e EncapsulationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("resolved member %s.%s: %s", e.Owner, e.Member, e.Reason)
	}
	return fmt.Sprintf("resolved member %s.%s must be unexported", e.Owner, e.Member)
}

func (e EncapsulationError) Is(target error) bool { return target == ErrEncapsulation }

// TypeMismatchError means the bound instance cannot be assigned to the slot.
// This only happens when a value was cached with As under a type it does not
// implement.
type TypeMismatchError struct {
	Owner    string
	Member   string
	Expected string
	Actual   string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("dependency type mismatch for %s.%s: expected=%s actual=%s",
		e.Owner, e.Member, e.Expected, e.Actual)
}

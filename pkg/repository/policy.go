package repository

import "reflect"

// SuperAdmin is implemented by user types that can bypass policies
type SuperAdmin interface {
	IsSuperAdmin() bool
}

// BasePolicy holds the defaults shared by generated policies: superadmins may
// do anything, and listing or creating is denied unless a policy allows it.
type BasePolicy struct{}

// Before runs ahead of every ability check. decided is false when the regular
// check should run. A nil user, including a typed nil pointer, is a guest.
func (BasePolicy) Before(user SuperAdmin, ability string) (allowed, decided bool) {
	if isNil(user) || !user.IsSuperAdmin() {
		return false, false
	}
	return true, true
}

// ViewAny denies listing by default
func (BasePolicy) ViewAny(user SuperAdmin) bool {
	return false
}

// Create denies creation by default
func (BasePolicy) Create(user SuperAdmin) bool {
	return false
}

// Authorize runs Before and falls back to check when it did not decide
func Authorize(p BasePolicy, user SuperAdmin, ability string, check func() bool) bool {
	if allowed, decided := p.Before(user, ability); decided {
		return allowed
	}
	return check != nil && check()
}

func isNil(user SuperAdmin) bool {
	if user == nil {
		return true
	}
	v := reflect.ValueOf(user)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Package model defines the data structures for property inspection.
package model

import "reflect"

// PropertyType is the identity token for the declared type of an inspected
// value. It is the grouping and filtering key: two values of the same
// declared type compare equal as PropertyType regardless of their runtime
// value, and the token is stable across repeated evaluations of the same
// call site.
type PropertyType string

// TypeNil is the PropertyType reported for untyped nil values.
const TypeNil PropertyType = "nil"

// TypeOf returns the PropertyType for a dynamically typed value.
func TypeOf(value any) PropertyType {
	t := reflect.TypeOf(value)
	if t == nil {
		return TypeNil
	}

	return PropertyType(t.String())
}

// TypeFor returns the PropertyType for the declared type T. Unlike TypeOf
// it preserves interface types, so the generically typed inspection call
// forms report the declared type rather than the runtime one.
func TypeFor[T any]() PropertyType {
	t := reflect.TypeFor[T]()

	return PropertyType(t.String())
}

// Name returns the display name of the type.
func (t PropertyType) Name() string {
	return string(t)
}

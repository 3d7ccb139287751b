package casing

import (
	"fmt"
	"reflect"
)

// TypeError is returned by the strict conversions when the input value is
// not text. Type holds the dynamic type of the rejected value; it is nil
// when the value was an untyped nil.
type TypeError struct {
	Type reflect.Type
}

// Error implements the error interface
func (e *TypeError) Error() string {
	if e.Type == nil {
		return "casing: cannot convert nil to text"
	}
	return fmt.Sprintf("casing: cannot convert %s to text", e.Type)
}

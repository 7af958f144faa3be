// Package nilcheck detects nil values hiding behind non-nil interfaces.
package nilcheck

import "reflect"

// nillableKinds are the reflect kinds for which IsNil is defined.
var nillableKinds = map[reflect.Kind]bool{
	reflect.Chan:      true,
	reflect.Func:      true,
	reflect.Interface: true,
	reflect.Map:       true,
	reflect.Pointer:   true,
	reflect.Slice:     true,
}

// Interface reports whether value is nil, including typed-nil values
// wrapped in a non-nil interface. A typed-nil Policy passed through an
// interface parameter would otherwise slip past a plain == nil comparison.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	return nillableKinds[v.Kind()] && v.IsNil()
}

package timedaction

import (
	"fmt"
	"reflect"
)

// UnsupportedObserverError is returned when an observer cannot be notified.
type UnsupportedObserverError struct {
	Observer Observer
}

func (err *UnsupportedObserverError) Error() string {
	return fmt.Sprintf("unsupported observer %T: no Notify target", err.Observer)
}

func isNil(observer Observer) bool {
	if observer == nil {
		return true
	}
	value := reflect.ValueOf(observer)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return value.IsNil()
	}
	return false
}

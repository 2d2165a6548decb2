package coerce

import (
	"reflect"
)

// Number reports whether v is an integer or floating-point scalar and returns it as float64
// Named types are accepted by underlying kind; bool, string, complex and containers are not
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case nil, bool, string:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// TypeNamer is implemented by values that carry a host-level type name
type TypeNamer interface {
	TypeName() string
}

// TypeName returns the name used for v in error messages
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	if n, ok := v.(TypeNamer); ok {
		return n.TypeName()
	}
	return reflect.TypeOf(v).String()
}

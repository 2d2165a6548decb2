package toml

import (
	"fmt"
	"reflect"
)

// Unmarshal parses TOML data and stores the result in the value pointed to by v
func Unmarshal(data []byte, v any) error {
	parsed, err := NewParser(data).Parse()
	if err != nil {
		return err
	}
	return Decode(parsed, v)
}

// Decode maps a parsed map[string]any onto v using reflection
// `toml` tags take priority over field names; keys absent from data leave fields untouched
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	switch val.Kind() {
	case reflect.Ptr:
		newVal := reflect.New(val.Type().Elem())
		if err := decodeValue(data, newVal.Elem()); err != nil {
			return err
		}
		val.Set(newVal)

	case reflect.Struct:
		dataMap, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table for struct, got %T", data)
		}
		return decodeStruct(dataMap, val)

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", data)
		}
		newSlice := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, newSlice.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		val.Set(newSlice)

	case reflect.Array:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", data)
		}
		if len(items) != val.Len() {
			return fmt.Errorf("expected array of %d elements, got %d", val.Len(), len(items))
		}
		// Decode into a scratch copy so a bad element leaves the target untouched
		scratch := reflect.New(val.Type()).Elem()
		for i, item := range items {
			if err := decodeValue(item, scratch.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		val.Set(scratch)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		dataMap, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		newMap := reflect.MakeMapWithSize(val.Type(), len(dataMap))
		for k, item := range dataMap {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := decodeValue(item, elem); err != nil {
				return fmt.Errorf("map key %s: %w", k, err)
			}
			newMap.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}
		val.Set(newMap)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int)
		if !ok {
			return fmt.Errorf("cannot convert %T to int", data)
		}
		if val.OverflowInt(int64(i)) {
			return fmt.Errorf("integer %d overflows %v", i, val.Type())
		}
		val.SetInt(int64(i))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := data.(int)
		if !ok || i < 0 {
			return fmt.Errorf("cannot convert %v to unsigned", data)
		}
		if val.OverflowUint(uint64(i)) {
			return fmt.Errorf("integer %d overflows %v", i, val.Type())
		}
		val.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int:
			val.SetFloat(float64(f))
		default:
			return fmt.Errorf("cannot convert %T to float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("unsupported target type %v", val.Type())
	}

	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		fieldType := typ.Field(i)
		if fieldType.PkgPath != "" {
			continue
		}
		key, _ := parseTag(fieldType)
		if key == "-" {
			continue
		}
		item, ok := data[key]
		if !ok {
			continue
		}
		if err := decodeValue(item, val.Field(i)); err != nil {
			return fmt.Errorf("%s.%s: %w", typ.Name(), fieldType.Name, err)
		}
	}
	return nil
}

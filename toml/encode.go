package toml

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshal returns the TOML encoding of v
//
// The root must be a struct or map[string]T:
//   - Scalars and inline arrays are written before [table] sections
//   - Nested structs/maps become one level of [table]; deeper nesting is rejected
//   - Struct fields/map keys are sorted for determinism
//   - Unexported fields, `toml:"-"` fields and nil pointers are skipped; `omitempty` honored
//   - Floats use the shortest representation that parses back to the same bits
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: cannot marshal nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct && val.Kind() != reflect.Map {
		return nil, fmt.Errorf("marshal: root must be struct or map, got %v", val.Kind())
	}

	enc := &encoder{w: new(bytes.Buffer)}
	if err := enc.encodeTable(val, true); err != nil {
		return nil, err
	}
	return enc.w.Bytes(), nil
}

type encoder struct {
	w *bytes.Buffer
}

type entry struct {
	key string
	val reflect.Value
}

// encodeTable writes scalars first, then child tables, so keys precede sub-tables
func (e *encoder) encodeTable(rv reflect.Value, root bool) error {
	entries, err := e.entries(rv)
	if err != nil {
		return err
	}

	var tables []entry
	for _, en := range entries {
		if isTable(en.val) {
			if !root {
				return fmt.Errorf("key %q: nested tables deeper than one level are not supported", en.key)
			}
			tables = append(tables, en)
			continue
		}

		e.writeKey(en.key)
		e.w.WriteString(" = ")
		if err := e.encodeValue(en.val); err != nil {
			return fmt.Errorf("key %q: %w", en.key, err)
		}
		e.w.WriteString("\n")
	}

	for _, en := range tables {
		e.w.WriteString("\n[")
		e.writeKey(en.key)
		e.w.WriteString("]\n")
		if err := e.encodeTable(en.val, false); err != nil {
			return err
		}
	}
	return nil
}

// entries collects the encodable key/value pairs of a struct or map, sorted by key
func (e *encoder) entries(rv reflect.Value) ([]entry, error) {
	var out []entry

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key must be string, got %v", rv.Type().Key().Kind())
		}
		iter := rv.MapRange()
		for iter.Next() {
			val := deref(iter.Value())
			if !val.IsValid() {
				continue
			}
			out = append(out, entry{key: iter.Key().String(), val: val})
		}

	case reflect.Struct:
		typ := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := typ.Field(i)
			if field.PkgPath != "" {
				continue
			}
			name, opts := parseTag(field)
			if name == "-" {
				continue
			}
			val := deref(rv.Field(i))
			if !val.IsValid() {
				continue
			}
			if strings.Contains(opts, "omitempty") && val.IsZero() {
				continue
			}
			out = append(out, entry{key: name, val: val})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}

// encodeValue writes a single primitive value or inline array
func (e *encoder) encodeValue(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		e.w.WriteString(strconv.FormatBool(v.Bool()))

	case reflect.String:
		e.encodeString(v.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.w.WriteString(strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.w.WriteString(strconv.FormatUint(v.Uint(), 10))

	case reflect.Float32:
		e.w.WriteString(formatFloat(v.Float(), 32))

	case reflect.Float64:
		e.w.WriteString(formatFloat(v.Float(), 64))

	case reflect.Slice, reflect.Array:
		e.w.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.w.WriteString(", ")
			}
			elem := deref(v.Index(i))
			if !elem.IsValid() {
				return fmt.Errorf("nil element at %d", i)
			}
			if err := e.encodeValue(elem); err != nil {
				return err
			}
		}
		e.w.WriteString("]")

	default:
		return fmt.Errorf("unsupported type: %v", v.Kind())
	}
	return nil
}

// formatFloat emits a literal the lexer reads back as TokenFloat with identical bits
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// deref unwraps interfaces and pointers; nil yields an invalid Value
func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isTable(v reflect.Value) bool {
	return v.Kind() == reflect.Struct || v.Kind() == reflect.Map
}

func parseTag(field reflect.StructField) (name, opts string) {
	name = field.Name
	tag := field.Tag.Get("toml")
	if tag == "" {
		return name, ""
	}
	parts := strings.SplitN(tag, ",", 2)
	if parts[0] != "" {
		name = parts[0]
	}
	if len(parts) > 1 {
		opts = parts[1]
	}
	return name, opts
}

func (e *encoder) writeKey(s string) {
	if isBareKey(s) {
		e.w.WriteString(s)
		return
	}
	e.encodeString(s)
}

func (e *encoder) encodeString(s string) {
	e.w.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.w.WriteString(`\"`)
		case '\\':
			e.w.WriteString(`\\`)
		case '\n':
			e.w.WriteString(`\n`)
		case '\r':
			e.w.WriteString(`\r`)
		case '\t':
			e.w.WriteString(`\t`)
		default:
			e.w.WriteRune(r)
		}
	}
	e.w.WriteByte('"')
}

// isBareKey reports whether s can be written unquoted and still lex as TokenIdent
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(isAlpha(r) || isDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	if s == "true" || s == "false" || specialFloats[s] {
		return false
	}
	c0 := rune(s[0])
	if isDigit(c0) || (c0 == '-' && len(s) > 1) {
		return false
	}
	return true
}

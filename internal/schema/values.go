package schema

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
}

// Values is a draft: a working copy of an entity keyed by field name.
type Values map[string]any

// Clone returns a copy of v; slice values are copied too.
func (v Values) Clone() Values {
	out := maps.Clone(v)
	if out == nil {
		return Values{}
	}
	for k, val := range out {
		if arr, ok := val.([]string); ok {
			out[k] = slices.Clone(arr)
		}
	}
	return out
}

// String returns the value of name as a trimmed string.
func (v Values) String(name string) string {
	s, _ := AsString(v[name])
	return s
}

// Strings returns the value of name as a string list.
func (v Values) Strings(name string) []string {
	arr, _ := AsStrings(v[name])
	return arr
}

// IsEmpty reports whether a value counts as absent: nil, a nil pointer,
// a blank string or an empty list.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// AsString formats a scalar value as a trimmed string.
func AsString(v any) (string, bool) {
	if IsEmpty(v) {
		return "", false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Map, reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.Format(DateLayout), true
		}
		return "", false
	}
	return strings.TrimSpace(fmt.Sprint(rv.Interface())), true
}

// AsNumber converts numbers and numeric strings to float64.
func AsNumber(v any) (float64, bool) {
	if IsEmpty(v) {
		return 0, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return n, err == nil
	}
	return 0, false
}

// AsStrings converts []string, []any and comma separated strings to a list.
// Blank entries are dropped.
func AsStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := AsString(item); ok && s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if strings.TrimSpace(t) == "" {
			return []string{}, true
		}
		return AsStrings(strings.Split(t, ","))
	}
	return nil, false
}

// ParseDate accepts time.Time values and the date layouts the backend emits.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	}
	s, ok := AsString(v)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

package domain

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// PageField is the filter key that carries the 1-based page number.
const PageField = "page"

// EntityFilter holds list filter state for one collection page.
// Fields never contain empty values: Merge and NewFilter strip them, so
// whatever reaches the backend is already clean.
type EntityFilter struct {
	Page   int
	Fields map[string]string
}

// NewFilter builds a clean filter on page 1 from raw field values.
func NewFilter(fields map[string]any) EntityFilter {
	f := EntityFilter{Page: 1, Fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		if k == PageField {
			if n, ok := pageNumber(v); ok {
				f.Page = n
			}
			continue
		}
		if s, ok := scalar(v); ok {
			f.Fields[k] = s
		}
	}
	return f
}

// Merge applies partial on top of f and returns the result.
// An empty value removes the field. Any change to a non-page field resets
// the page to 1; a partial that only carries "page" keeps the other fields.
// The second return value reports whether a non-page field changed.
func (f EntityFilter) Merge(partial map[string]any) (EntityFilter, bool) {
	out := f.Clone()
	changed := false

	for k, v := range partial {
		if k == PageField {
			continue
		}
		s, ok := scalar(v)
		prev, had := out.Fields[k]
		switch {
		case !ok && had:
			delete(out.Fields, k)
			changed = true
		case ok && (!had || prev != s):
			out.Fields[k] = s
			changed = true
		}
	}

	if changed {
		out.Page = 1
		return out, true
	}
	if v, ok := partial[PageField]; ok {
		if n, ok := pageNumber(v); ok {
			out.Page = n
		}
	}
	return out, false
}

// WithPage returns a copy of f on page n. Other fields are untouched.
func (f EntityFilter) WithPage(n int) EntityFilter {
	out := f.Clone()
	if n < 1 {
		n = 1
	}
	out.Page = n
	return out
}

// Clone returns a deep copy of f.
func (f EntityFilter) Clone() EntityFilter {
	out := EntityFilter{Page: f.Page, Fields: make(map[string]string, len(f.Fields))}
	for k, v := range f.Fields {
		if v != "" {
			out.Fields[k] = v
		}
	}
	if out.Page < 1 {
		out.Page = 1
	}
	return out
}

// Get returns the value of a filter field.
func (f EntityFilter) Get(name string) (string, bool) {
	v, ok := f.Fields[name]
	return v, ok
}

// Query encodes the filter as URL query parameters, page included.
func (f EntityFilter) Query() url.Values {
	q := url.Values{}
	for k, v := range f.Fields {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	q.Set(PageField, strconv.Itoa(page))
	return q
}

// Key returns a stable string form of the filter, used in cache keys.
func (f EntityFilter) Key() string {
	return f.Query().Encode()
}

// String renders the filter for logs.
func (f EntityFilter) String() string {
	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+f.Fields[k])
	}
	parts = append(parts, fmt.Sprintf("page=%d", f.Page))
	return strings.Join(parts, " ")
}

// scalar formats a filter value. It reports false for values that must be
// stripped: nil, nil pointers, and blank strings.
func scalar(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		return s, s != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}

	s := strings.TrimSpace(fmt.Sprint(rv.Interface()))
	return s, s != ""
}

func pageNumber(v any) (int, bool) {
	s, ok := scalar(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

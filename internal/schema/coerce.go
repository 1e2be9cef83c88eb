package schema

import "math"

// Coerce returns the payload for draft: only schema fields are kept, numbers
// are parsed from strings, dates are normalised to YYYY-MM-DD and lists are
// copied. Secrets are sent as typed. Absent values are dropped, except empty lists, which are kept so a
// checklist can be cleared. Values that cannot be coerced are passed through
// unchanged; Validate reports them.
func Coerce(s *Schema, draft Values) Values {
	out := make(Values, len(draft))
	for _, f := range s.fields {
		v, present := draft[f.Name]
		if !present || v == nil {
			continue
		}

		switch f.Kind {
		case KindStringArray:
			if arr, ok := AsStrings(v); ok {
				out[f.Name] = arr
			}
			continue
		case KindNumber:
			if IsEmpty(v) {
				continue
			}
			if n, ok := AsNumber(v); ok {
				out[f.Name] = number(n)
				continue
			}
		case KindDate:
			if IsEmpty(v) {
				continue
			}
			if d, ok := ParseDate(v); ok {
				out[f.Name] = d.Format(DateLayout)
				continue
			}
		default:
			if IsEmpty(v) {
				continue
			}
			if f.Secret {
				out[f.Name] = v
				continue
			}
			if str, ok := AsString(v); ok {
				out[f.Name] = str
				continue
			}
		}
		out[f.Name] = v
	}
	return out
}

// number keeps whole numbers integral so ids encode as 12, not 12.0.
func number(n float64) any {
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return int64(n)
	}
	return n
}

package schema

import "slices"

// ToggleOption switches option on or off in a multi-select and returns the
// new selection. values is never modified.
//
// When exclusive is set, turning it on yields exactly [exclusive], and
// turning any other option on drops exclusive first.
func ToggleOption(values []string, option string, on bool, exclusive string) []string {
	if !on {
		return slices.DeleteFunc(slices.Clone(values), func(v string) bool { return v == option })
	}
	if exclusive != "" && option == exclusive {
		return []string{exclusive}
	}

	out := make([]string, 0, len(values)+1)
	for _, v := range values {
		if exclusive != "" && v == exclusive {
			continue
		}
		out = append(out, v)
	}
	if !slices.Contains(out, option) {
		out = append(out, option)
	}
	return out
}

// Toggle applies ToggleOption to the named string-array field of draft,
// honouring the field's exclusive option. It returns an updated copy.
func (s *Schema) Toggle(draft Values, name, option string, on bool) (Values, bool) {
	f, ok := s.Field(name)
	if !ok || f.Kind != KindStringArray {
		return draft, false
	}
	out := draft.Clone()
	out[name] = ToggleOption(draft.Strings(name), option, on, f.Exclusive)
	return out, true
}

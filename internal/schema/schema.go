// Package schema declares the editable fields of every entity the console
// manages. Schemas are pure data: the validator checks drafts against them,
// forms render prompts from them and Coerce shapes outgoing payloads.
package schema

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Kind is the value type of a field.
type Kind string

const (
	KindString      Kind = "string"
	KindNumber      Kind = "number"
	KindEnum        Kind = "enum"
	KindDate        Kind = "date"
	KindStringArray Kind = "stringArray"
)

// IsValid checks if the Kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindNumber, KindEnum, KindDate, KindStringArray:
		return true
	}
	return false
}

// FormatEmail marks a string field that must hold an email address.
const FormatEmail = "email"

// Field describes one editable field.
//
// For string fields Min and Max bound the length; for number fields they
// bound the value; for string arrays they bound the number of items.
// Message, when set, replaces every constraint message except "required".
type Field struct {
	Name      string   `yaml:"name"`
	Label     string   `yaml:"label"`
	Kind      Kind     `yaml:"kind"`
	Required  bool     `yaml:"required"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Unit      string   `yaml:"unit"`
	Enum      []string `yaml:"enum"`
	Format    string   `yaml:"format"`
	Exclusive string   `yaml:"exclusive"`
	Default   any      `yaml:"default"`
	Message   string   `yaml:"message"`
	Secret    bool     `yaml:"secret"`
}

// DisplayLabel returns Label, or Name when no label is set.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// HasOption reports whether v is one of the field's enum values.
func (f Field) HasOption(v string) bool {
	return slices.Contains(f.Enum, v)
}

func (f Field) clone() Field {
	out := f
	out.Enum = slices.Clone(f.Enum)
	if f.Min != nil {
		v := *f.Min
		out.Min = &v
	}
	if f.Max != nil {
		v := *f.Max
		out.Max = &v
	}
	if arr, ok := f.Default.([]string); ok {
		out.Default = slices.Clone(arr)
	}
	return out
}

// RuleKind identifies a cross-field rule.
type RuleKind string

const (
	// RuleDateOrder fails when Field holds a date earlier than Other.
	RuleDateOrder RuleKind = "date_order"
	// RuleMatches fails when Field differs from Other.
	RuleMatches RuleKind = "matches"
)

// Rule is a constraint spanning two fields. Errors are reported on Field.
type Rule struct {
	Kind    RuleKind `yaml:"kind"`
	Field   string   `yaml:"field"`
	Other   string   `yaml:"other"`
	Message string   `yaml:"message"`
}

// DateOrder requires end to be on or after start.
func DateOrder(start, end, message string) Rule {
	return Rule{Kind: RuleDateOrder, Field: end, Other: start, Message: message}
}

// Matches requires confirm to equal field.
func Matches(confirm, field, message string) Rule {
	return Rule{Kind: RuleMatches, Field: confirm, Other: field, Message: message}
}

// Schema is the immutable field list of one form.
type Schema struct {
	name   string
	entity domain.EntityType
	fields []Field
	rules  []Rule
	index  map[string]int
}

// New builds a schema and checks that its definition is consistent.
func New(name string, entity domain.EntityType, fields []Field, rules ...Rule) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema: name is required")
	}
	s := &Schema{
		name:   name,
		entity: entity,
		fields: make([]Field, 0, len(fields)),
		rules:  slices.Clone(rules),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %s: field without name", name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("schema %s: duplicate field %q", name, f.Name)
		}
		if !f.Kind.IsValid() {
			return nil, fmt.Errorf("schema %s: field %q: unknown kind %q", name, f.Name, f.Kind)
		}
		if f.Kind == KindEnum && len(f.Enum) == 0 {
			return nil, fmt.Errorf("schema %s: field %q: enum without values", name, f.Name)
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return nil, fmt.Errorf("schema %s: field %q: min > max", name, f.Name)
		}
		if f.Exclusive != "" && f.Kind != KindStringArray {
			return nil, fmt.Errorf("schema %s: field %q: exclusive option on non-array field", name, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f.clone())
	}

	for _, r := range s.rules {
		if r.Kind != RuleDateOrder && r.Kind != RuleMatches {
			return nil, fmt.Errorf("schema %s: unknown rule kind %q", name, r.Kind)
		}
		for _, ref := range []string{r.Field, r.Other} {
			if _, ok := s.index[ref]; !ok {
				return nil, fmt.Errorf("schema %s: rule %s references unknown field %q", name, r.Kind, ref)
			}
		}
	}

	return s, nil
}

// MustNew is like New but panics on an invalid definition.
func MustNew(name string, entity domain.EntityType, fields []Field, rules ...Rule) *Schema {
	s, err := New(name, entity, fields, rules...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the form name, e.g. "diet_plan_duplicate".
func (s *Schema) Name() string { return s.name }

// Entity returns the entity type the form edits.
func (s *Schema) Entity() domain.EntityType { return s.entity }

// Fields returns a copy of the ordered field list.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.clone()
	}
	return out
}

// Rules returns a copy of the cross-field rules.
func (s *Schema) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i].clone(), true
}

// Defaults returns a draft holding every declared default value.
func (s *Schema) Defaults() Values {
	out := Values{}
	for _, f := range s.fields {
		if f.Default == nil {
			continue
		}
		switch f.Kind {
		case KindStringArray:
			if arr, ok := AsStrings(f.Default); ok {
				out[f.Name] = arr
			}
		case KindNumber:
			if n, ok := AsNumber(f.Default); ok {
				out[f.Name] = n
			}
		default:
			out[f.Name] = f.Default
		}
	}
	return out
}

// Package validator checks drafts against field schemas.
package validator

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// Result is the outcome of one validation pass. Errors maps a field name to
// the first message produced for it.
type Result struct {
	Valid  bool
	Errors map[string]string

	order []string
}

// Err returns nil for a valid result, otherwise a *domain.ValidationError
// listing the errors in schema order.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]domain.FieldError, 0, len(r.Errors))
	for _, name := range r.order {
		errs = append(errs, domain.FieldError{Field: name, Message: r.Errors[name]})
	}
	return domain.NewValidationErrors(errs)
}

// Fields returns the names of the failing fields in schema order.
func (r Result) Fields() []string {
	return append([]string(nil), r.order...)
}

type collector struct {
	errs  map[string]string
	order []string
}

func (c *collector) add(field, msg string) {
	if _, exists := c.errs[field]; exists {
		return
	}
	c.errs[field] = msg
	c.order = append(c.order, field)
}

func (c *collector) has(field string) bool {
	_, ok := c.errs[field]
	return ok
}

// Validate evaluates every field and cross-field rule of s against draft.
// It has no side effects and reports all failures in the returned Result.
func Validate(s *schema.Schema, draft schema.Values) Result {
	c := &collector{errs: map[string]string{}}

	for _, f := range s.Fields() {
		v := draft[f.Name]
		if schema.IsEmpty(v) {
			if f.Required {
				c.add(f.Name, f.DisplayLabel()+" is required")
			}
			continue
		}
		if msg := checkField(f, v); msg != "" {
			c.add(f.Name, msg)
		}
	}

	for _, r := range s.Rules() {
		if c.has(r.Field) || c.has(r.Other) {
			continue
		}
		if msg := checkRule(s, r, draft); msg != "" {
			c.add(r.Field, msg)
		}
	}

	return Result{Valid: len(c.order) == 0, Errors: c.errs, order: c.order}
}

func checkField(f schema.Field, v any) string {
	switch f.Kind {
	case schema.KindNumber:
		return checkNumber(f, v)
	case schema.KindString:
		return checkString(f, v)
	case schema.KindEnum:
		s, ok := schema.AsString(v)
		if !ok || !f.HasOption(s) {
			return message(f, fmt.Sprintf("%s must be one of: %s", f.DisplayLabel(), strings.Join(f.Enum, ", ")))
		}
	case schema.KindDate:
		if _, ok := schema.ParseDate(v); !ok {
			return message(f, f.DisplayLabel()+" must be a valid date")
		}
	case schema.KindStringArray:
		return checkList(f, v)
	}
	return ""
}

func checkNumber(f schema.Field, v any) string {
	n, ok := schema.AsNumber(v)
	if !ok {
		return message(f, f.DisplayLabel()+" must be a number")
	}
	if f.Min != nil && n < *f.Min {
		return message(f, fmt.Sprintf("%s must be at least %s", f.DisplayLabel(), bound(*f.Min, f.Unit)))
	}
	if f.Max != nil && n > *f.Max {
		return message(f, fmt.Sprintf("%s must be at most %s", f.DisplayLabel(), bound(*f.Max, f.Unit)))
	}
	return ""
}

func checkString(f schema.Field, v any) string {
	s, ok := schema.AsString(v)
	if !ok {
		return message(f, f.DisplayLabel()+" must be text")
	}
	n := utf8.RuneCountInString(s)
	if f.Min != nil && float64(n) < *f.Min {
		return message(f, fmt.Sprintf("%s must be at least %d characters", f.DisplayLabel(), int(*f.Min)))
	}
	if f.Max != nil && float64(n) > *f.Max {
		return message(f, fmt.Sprintf("%s must be at most %d characters", f.DisplayLabel(), int(*f.Max)))
	}
	if f.Format == schema.FormatEmail && !isEmail(s) {
		return message(f, "Please enter a valid email address")
	}
	return ""
}

func checkList(f schema.Field, v any) string {
	items, ok := schema.AsStrings(v)
	if !ok {
		return message(f, f.DisplayLabel()+" must be a list")
	}
	if f.Min != nil && float64(len(items)) < *f.Min {
		return message(f, fmt.Sprintf("%s must have at least %d items", f.DisplayLabel(), int(*f.Min)))
	}
	if f.Max != nil && float64(len(items)) > *f.Max {
		return message(f, fmt.Sprintf("%s must have at most %d items", f.DisplayLabel(), int(*f.Max)))
	}
	if len(f.Enum) > 0 {
		for _, item := range items {
			if !f.HasOption(item) {
				return message(f, fmt.Sprintf("%s contains an unknown option %q", f.DisplayLabel(), item))
			}
		}
	}
	return ""
}

func checkRule(s *schema.Schema, r schema.Rule, draft schema.Values) string {
	switch r.Kind {
	case schema.RuleDateOrder:
		end, okEnd := schema.ParseDate(draft[r.Field])
		start, okStart := schema.ParseDate(draft[r.Other])
		if !okEnd || !okStart {
			return ""
		}
		if end.Before(start) {
			return ruleMessage(r, "End date must be after start date")
		}
	case schema.RuleMatches:
		a, _ := schema.AsString(draft[r.Field])
		b, _ := schema.AsString(draft[r.Other])
		if a != b {
			other, _ := s.Field(r.Other)
			return ruleMessage(r, fmt.Sprintf("%s does not match", other.DisplayLabel()))
		}
	}
	return ""
}

func message(f schema.Field, fallback string) string {
	if f.Message != "" {
		return f.Message
	}
	return fallback
}

func ruleMessage(r schema.Rule, fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

func bound(n float64, unit string) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// isEmail accepts a bare address with a dotted domain, e.g. "a@b.co".
// Display names and angle brackets are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domainPart := s[at+1:]
	return strings.Contains(domainPart, ".") &&
		!strings.HasPrefix(domainPart, ".") &&
		!strings.HasSuffix(domainPart, ".")
}

// FromError converts a ValidationError produced elsewhere, for example by a
// service input check, into a Result.
func FromError(verr *domain.ValidationError) Result {
	c := &collector{errs: map[string]string{}}
	for _, fe := range verr.Errors {
		c.add(fe.Field, fe.Message)
	}
	return Result{Valid: len(c.order) == 0, Errors: c.errs, order: c.order}
}

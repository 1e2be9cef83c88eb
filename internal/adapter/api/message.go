package api

import (
	"encoding/json"
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// errorBody is the backend's structured error shape. errors is either a
// field->messages map (Laravel validation) or a plain list.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// errorMessage extracts a presentable message from an error response body.
// Markup is stripped; fallback is returned when nothing usable is left.
func errorMessage(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return fallback
	}

	for _, candidate := range []string{eb.Message, eb.Error, firstFieldError(eb.Errors)} {
		if msg := sanitizeMessage(candidate); msg != "" {
			return msg
		}
	}
	return fallback
}

// firstFieldError returns the first message of an errors payload. Map keys
// are visited in sorted order so the pick is stable.
func firstFieldError(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var byField map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byField); err == nil {
		keys := make([]string, 0, len(byField))
		for k := range byField {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if msg := firstString(byField[k]); msg != "" {
				return msg
			}
		}
		return ""
	}
	return firstString(raw)
}

func firstString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}

func sanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := html.UnescapeString(messageSanitizer().Sanitize(trimmed))
	return strings.Join(strings.Fields(cleaned), " ")
}

func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy
}

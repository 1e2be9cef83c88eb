package schema

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	s := MustNew("test", domain.EntityDietPlan, []Field{
		{Name: "client_id", Kind: KindNumber},
		{Name: "daily_calories", Kind: KindNumber},
		{Name: "title", Kind: KindString},
		{Name: "description", Kind: KindString},
		{Name: "status", Kind: KindEnum, Enum: []string{"active"}},
		{Name: "start_date", Kind: KindDate},
		{Name: "end_date", Kind: KindDate},
		{Name: "tags", Kind: KindStringArray},
		{Name: "notes", Kind: KindStringArray},
	})

	tags := []string{"a", "b"}
	draft := Values{
		"client_id":      "12",
		"daily_calories": "1850.5",
		"title":          "  Cut  ",
		"description":    "   ",
		"status":         "active",
		"start_date":     time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		"end_date":       "2024-04-01T00:00:00.000000Z",
		"tags":           tags,
		"notes":          []string{},
		"unknown":        "dropped",
	}

	got := Coerce(s, draft)
	want := Values{
		"client_id":      int64(12),
		"daily_calories": 1850.5,
		"title":          "Cut",
		"status":         "active",
		"start_date":     "2024-03-01",
		"end_date":       "2024-04-01",
		"tags":           []string{"a", "b"},
		"notes":          []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coerce() mismatch (-want +got):\n%s", diff)
	}

	got["tags"].([]string)[0] = "changed"
	if tags[0] != "a" {
		t.Error("Coerce must copy lists")
	}
}

func TestCoerce_PassesThroughUnparseable(t *testing.T) {
	t.Parallel()

	s := MustNew("test", domain.EntityDietPlan, []Field{
		{Name: "client_id", Kind: KindNumber},
		{Name: "start_date", Kind: KindDate},
	})

	got := Coerce(s, Values{"client_id": "abc", "start_date": "tomorrow"})
	want := Values{"client_id": "abc", "start_date": "tomorrow"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coerce() mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerce_KeepsSecretsVerbatim(t *testing.T) {
	t.Parallel()

	s := MustBuiltin().Must(Login)
	got := Coerce(s, Values{"email": " ann@example.com ", "password": " pa ss "})

	want := Values{"email": "ann@example.com", "password": " pa ss "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coerce() mismatch (-want +got):\n%s", diff)
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewFilter_StripsEmptyValues(t *testing.T) {
	t.Parallel()

	var nilStatus *string
	f := NewFilter(map[string]any{
		"search":    "",
		"status":    nilStatus,
		"role":      nil,
		"blank":     "   ",
		"client_id": 7,
		"q":         ptr("iron"),
	})

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, map[string]string{"client_id": "7", "q": "iron"}, f.Fields)
}

func TestEntityFilter_Merge(t *testing.T) {
	t.Parallel()

	base := EntityFilter{Page: 3, Fields: map[string]string{"status": "active", "search": "ann"}}

	tests := []struct {
		name        string
		partial     map[string]any
		wantFields  map[string]string
		wantPage    int
		wantChanged bool
	}{
		{
			name:        "changing a field resets page",
			partial:     map[string]any{"status": "inactive"},
			wantFields:  map[string]string{"status": "inactive", "search": "ann"},
			wantPage:    1,
			wantChanged: true,
		},
		{
			name:        "clearing a field removes it and resets page",
			partial:     map[string]any{"status": ""},
			wantFields:  map[string]string{"search": "ann"},
			wantPage:    1,
			wantChanged: true,
		},
		{
			name:        "page only keeps other fields",
			partial:     map[string]any{"page": 5},
			wantFields:  map[string]string{"status": "active", "search": "ann"},
			wantPage:    5,
			wantChanged: false,
		},
		{
			name:        "field change wins over page in the same partial",
			partial:     map[string]any{"page": 4, "search": "bob"},
			wantFields:  map[string]string{"status": "active", "search": "bob"},
			wantPage:    1,
			wantChanged: true,
		},
		{
			name:        "same value is not a change",
			partial:     map[string]any{"status": "active"},
			wantFields:  map[string]string{"status": "active", "search": "ann"},
			wantPage:    3,
			wantChanged: false,
		},
		{
			name:        "clearing an absent field is not a change",
			partial:     map[string]any{"role": nil},
			wantFields:  map[string]string{"status": "active", "search": "ann"},
			wantPage:    3,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := base.Merge(tt.partial)
			assert.Equal(t, tt.wantFields, got.Fields)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}

	// base must not be mutated by Merge.
	assert.Equal(t, 3, base.Page)
	assert.Equal(t, "active", base.Fields["status"])
}

func TestEntityFilter_Query(t *testing.T) {
	t.Parallel()

	f, _ := NewFilter(nil).Merge(map[string]any{"status": DietPlanActive, "client_id": int64(12), "search": ""})
	q := f.Query()

	require.Equal(t, "active", q.Get("status"))
	require.Equal(t, "12", q.Get("client_id"))
	require.Equal(t, "1", q.Get("page"))
	_, hasSearch := q["search"]
	assert.False(t, hasSearch, "empty values must never be encoded")
	assert.Equal(t, "client_id=12&page=1&status=active", f.Key())
}

func TestEntityFilter_WithPage(t *testing.T) {
	t.Parallel()

	f := EntityFilter{Page: 1, Fields: map[string]string{"role": "trainer"}}
	g := f.WithPage(0)
	assert.Equal(t, 1, g.Page)
	g = f.WithPage(4)
	assert.Equal(t, 4, g.Page)
	assert.Equal(t, "trainer", g.Fields["role"])
	assert.Equal(t, 1, f.Page)
}

func TestEntityFilter_String(t *testing.T) {
	t.Parallel()

	f := EntityFilter{Page: 2, Fields: map[string]string{"status": "active", "role": "trainer"}}
	assert.Equal(t, "role=trainer status=active page=2", f.String())
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestNew_RejectsInconsistentDefinitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []Field
		rules  []Rule
	}{
		{
			name:   "duplicate field",
			fields: []Field{{Name: "a", Kind: KindString}, {Name: "a", Kind: KindString}},
		},
		{
			name:   "unknown kind",
			fields: []Field{{Name: "a", Kind: "blob"}},
		},
		{
			name:   "enum without values",
			fields: []Field{{Name: "a", Kind: KindEnum}},
		},
		{
			name:   "min above max",
			fields: []Field{{Name: "a", Kind: KindNumber, Min: f64(10), Max: f64(1)}},
		},
		{
			name:   "exclusive on scalar",
			fields: []Field{{Name: "a", Kind: KindString, Exclusive: "none"}},
		},
		{
			name:   "rule references unknown field",
			fields: []Field{{Name: "start", Kind: KindDate}},
			rules:  []Rule{DateOrder("start", "end", "")},
		},
		{
			name:   "unknown rule kind",
			fields: []Field{{Name: "a", Kind: KindString}, {Name: "b", Kind: KindString}},
			rules:  []Rule{{Kind: "xor", Field: "a", Other: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New("test", domain.EntityGym, tt.fields, tt.rules...)
			assert.Error(t, err)
		})
	}
}

func TestSchema_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	s := MustNew("test", domain.EntityGym, []Field{
		{Name: "status", Kind: KindEnum, Enum: []string{"active", "inactive"}, Min: f64(1)},
	})

	fields := s.Fields()
	fields[0].Enum[0] = "hacked"
	*fields[0].Min = 99
	fields[0].Name = "renamed"

	got, ok := s.Field("status")
	require.True(t, ok)
	assert.Equal(t, []string{"active", "inactive"}, got.Enum)
	assert.Equal(t, 1.0, *got.Min)

	_, ok = s.Field("renamed")
	assert.False(t, ok)
}

func TestSchema_Defaults(t *testing.T) {
	t.Parallel()

	s := MustNew("test", domain.EntityClientProfile, []Field{
		{Name: "age", Kind: KindNumber, Default: 30},
		{Name: "gender", Kind: KindEnum, Enum: []string{"male", "female"}, Default: "male"},
		{Name: "allergies", Kind: KindStringArray, Exclusive: "none", Default: []any{"none"}},
		{Name: "city", Kind: KindString},
	})

	assert.Equal(t, Values{
		"age":       30.0,
		"gender":    "male",
		"allergies": []string{"none"},
	}, s.Defaults())
}

func TestField_DisplayLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Start date", Field{Name: "start_date", Label: "Start date"}.DisplayLabel())
	assert.Equal(t, "start_date", Field{Name: "start_date"}.DisplayLabel())
}

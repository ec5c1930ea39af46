package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadShape() Shape {
	return Shape{
		Name: "Lead",
		Fields: []Field{
			{Name: "Id", Alias: "io_uuid"},
			{Name: "FirstName", Alias: "io_first_name", Writable: true},
			{Name: "LeadNumber", Alias: "io_lead_number"},
		},
	}
}

func TestDescribe_KeyByReservedAlias(t *testing.T) {
	descriptors, err := Describe(leadShape())
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	assert.Equal(t, "Id", descriptors[0].Name)
	assert.True(t, descriptors[0].IsPrimaryKey)
	assert.False(t, descriptors[1].IsPrimaryKey)
	assert.True(t, descriptors[1].Writable)
	assert.Equal(t, "io_lead_number", descriptors[2].Alias)

	key, ok := PrimaryKey(descriptors)
	require.True(t, ok)
	assert.Equal(t, "Id", key.Name)
}

func TestDescribe_DeclaredKeyWins(t *testing.T) {
	shape := Shape{
		Name: "Account",
		Fields: []Field{
			{Name: "Uuid", Alias: "io_uuid"},
			{Name: "Code", Alias: "code", PrimaryKey: true},
		},
	}

	descriptors, err := Describe(shape)
	require.NoError(t, err)

	key, ok := PrimaryKey(descriptors)
	require.True(t, ok)
	assert.Equal(t, "Code", key.Name)
	assert.False(t, descriptors[0].IsPrimaryKey)
}

func TestDescribe_NoKey(t *testing.T) {
	shape := Shape{Name: "Note", Fields: []Field{{Name: "Text", Alias: "io_text"}}}

	descriptors, err := Describe(shape)
	require.NoError(t, err)

	_, ok := PrimaryKey(descriptors)
	assert.False(t, ok)
}

func TestDescribe_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{name: "empty name", shape: Shape{Fields: []Field{{Name: "A"}}}},
		{name: "unnamed field", shape: Shape{Name: "X", Fields: []Field{{Alias: "a"}}}},
		{name: "duplicate field", shape: Shape{Name: "X", Fields: []Field{{Name: "A"}, {Name: "A"}}}},
		{name: "two keys", shape: Shape{Name: "X", Fields: []Field{
			{Name: "A", PrimaryKey: true},
			{Name: "B", PrimaryKey: true},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Describe(tt.shape)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestShape_Aliases(t *testing.T) {
	shape := Shape{Name: "X", Fields: []Field{{Name: "a"}, {Name: "B", Alias: "io_b"}}}
	assert.Equal(t, []string{"a", "io_b"}, shape.Aliases())

	f, ok := shape.Field("B")
	require.True(t, ok)
	assert.Equal(t, "io_b", f.Alias)

	_, ok = shape.Field("missing")
	assert.False(t, ok)
}

func TestMapper_CachesAndUsesCustomAlias(t *testing.T) {
	m := NewMapper("code")
	shape := Shape{Name: "Item", Fields: []Field{{Name: "Code", Alias: "code"}, {Name: "Id", Alias: "io_uuid"}}}

	first, err := m.Describe(shape)
	require.NoError(t, err)
	key, ok := PrimaryKey(first)
	require.True(t, ok)
	assert.Equal(t, "Code", key.Name)

	// Повторный вызов возвращает копию: правка результата не портит кэш
	first[0].Alias = "changed"
	second, err := m.Describe(shape)
	require.NoError(t, err)
	assert.Equal(t, "code", second[0].Alias)
}

func TestMapper_RejectsConflictingShape(t *testing.T) {
	m := NewMapper(DefaultKeyAlias)
	_, err := m.Describe(leadShape())
	require.NoError(t, err)

	conflicting := leadShape()
	conflicting.Fields = conflicting.Fields[:1]
	_, err = m.Describe(conflicting)
	assert.ErrorIs(t, err, ErrSchema)

	again, err := m.Describe(leadShape())
	require.NoError(t, err)
	assert.NotEmpty(t, again)
}

package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New("Lead", []Column{
		{Name: "Id", PrimaryKey: true},
		{Name: "FirstName"},
		{Name: "LastName"},
	})
	require.NoError(t, err)
	return tbl
}

// fillRow добавляет строку и принимает изменения, как это делает загрузка с сервера
func fillRow(t *testing.T, tbl *Table, values map[string]string) *Row {
	t.Helper()
	r, err := tbl.Append(values)
	require.NoError(t, err)
	r.AcceptChanges()
	require.Equal(t, Unchanged, r.State())
	return r
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr error
	}{
		{name: "single key", columns: []Column{{Name: "Id", PrimaryKey: true}, {Name: "Name"}}},
		{name: "no key", columns: []Column{{Name: "Name"}}},
		{name: "duplicate column", columns: []Column{{Name: "Name"}, {Name: "Name"}}, wantErr: ErrDuplicateColumn},
		{
			name:    "two keys",
			columns: []Column{{Name: "Id", PrimaryKey: true}, {Name: "Other", PrimaryKey: true}},
			wantErr: ErrMultipleKeys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New("Lead", tt.columns)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Lead", tbl.Name())
			assert.Equal(t, tt.columns, tbl.Columns())
		})
	}
}

func TestRow_StateTransitions(t *testing.T) {
	t.Run("new row is detached", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := tbl.NewRow()
		assert.Equal(t, Detached, r.State())
		assert.NotEmpty(t, r.TempID())
		assert.ErrorIs(t, r.Delete(), ErrRowDetached)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("detached row stays detached on set", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := tbl.NewRow()
		require.NoError(t, r.Set("FirstName", "Unit"))
		assert.Equal(t, Detached, r.State())
		assert.Empty(t, tbl.Changes())

		require.NoError(t, tbl.Add(r))
		assert.Equal(t, Added, r.State())
		v, _ := r.Get("FirstName")
		assert.Equal(t, "Unit", v)
	})

	t.Run("added row stays added on set", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := tbl.NewRow()
		require.NoError(t, tbl.Add(r))
		assert.Equal(t, Added, r.State())

		require.NoError(t, r.Set("FirstName", "Unit"))
		assert.Equal(t, Added, r.State())
	})

	t.Run("added row is removed on delete", func(t *testing.T) {
		tbl := newLeadTable(t)
		r, err := tbl.Append(map[string]string{"FirstName": "Unit"})
		require.NoError(t, err)

		require.NoError(t, r.Delete())
		assert.Equal(t, 0, tbl.Len())
		assert.Empty(t, tbl.Changes())
	})

	t.Run("unchanged row becomes modified", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "Old"})

		require.NoError(t, r.Set("FirstName", "New"))
		assert.Equal(t, Modified, r.State())

		v, _ := r.Get("FirstName")
		assert.Equal(t, "New", v)
		orig, _ := r.Original("FirstName")
		assert.Equal(t, "Old", orig)
	})

	t.Run("unchanged and modified rows become deleted", func(t *testing.T) {
		tbl := newLeadTable(t)
		r1 := fillRow(t, tbl, map[string]string{"Id": "k1"})
		r2 := fillRow(t, tbl, map[string]string{"Id": "k2"})
		require.NoError(t, r2.Set("FirstName", "x"))

		require.NoError(t, r1.Delete())
		require.NoError(t, r2.Delete())
		assert.Equal(t, Deleted, r1.State())
		assert.Equal(t, Deleted, r2.State())
		assert.Equal(t, 2, tbl.Len())
	})

	t.Run("deleted row rejects set and ignores delete", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := fillRow(t, tbl, map[string]string{"Id": "k1"})
		require.NoError(t, r.Delete())

		assert.ErrorIs(t, r.Set("FirstName", "x"), ErrRowDeleted)
		require.NoError(t, r.Delete())
		assert.Equal(t, Deleted, r.State())
	})

	t.Run("unknown column", func(t *testing.T) {
		tbl := newLeadTable(t)
		r := tbl.NewRow()
		assert.ErrorIs(t, r.Set("Missing", "x"), ErrUnknownColumn)
	})

	t.Run("foreign row", func(t *testing.T) {
		a := newLeadTable(t)
		b := newLeadTable(t)
		assert.ErrorIs(t, b.Add(a.NewRow()), ErrForeignRow)
	})
}

func TestRow_SetNull(t *testing.T) {
	tbl := newLeadTable(t)
	r := fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "Unit"})

	require.NoError(t, r.SetNull("FirstName"))
	_, ok := r.Get("FirstName")
	assert.False(t, ok)
	assert.Equal(t, Modified, r.State())
}

func TestRow_Overwrite(t *testing.T) {
	tbl := newLeadTable(t)
	r, err := tbl.Append(map[string]string{"FirstName": "Unit", "LastName": "Test"})
	require.NoError(t, err)

	r.Overwrite(map[string]string{"Id": "server-key", "FirstName": "Unit", "Unknown": "dropped"})

	assert.Equal(t, Added, r.State())
	assert.Equal(t, map[string]string{"Id": "server-key", "FirstName": "Unit"}, r.Values())
	key, ok := r.Key()
	require.True(t, ok)
	assert.Equal(t, "server-key", key)
}

func TestTable_Changes(t *testing.T) {
	tbl := newLeadTable(t)
	unchanged := fillRow(t, tbl, map[string]string{"Id": "k0"})
	modified := fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "Old"})
	deleted := fillRow(t, tbl, map[string]string{"Id": "k2"})
	added, err := tbl.Append(map[string]string{"FirstName": "New"})
	require.NoError(t, err)

	// смена ключа не влияет на адресацию изменения
	require.NoError(t, modified.Set("Id", "k1-renamed"))
	require.NoError(t, deleted.Delete())

	changes := tbl.Changes()
	require.Len(t, changes, 3)

	assert.Equal(t, OpUpdate, changes[0].Op)
	assert.Equal(t, "k1", changes[0].Key)
	assert.True(t, changes[0].HasKey)
	assert.Same(t, modified, changes[0].Row)

	assert.Equal(t, OpDelete, changes[1].Op)
	assert.Equal(t, "k2", changes[1].Key)

	assert.Equal(t, OpInsert, changes[2].Op)
	assert.Equal(t, added.TempID(), changes[2].TempID)
	assert.False(t, changes[2].HasKey)

	_, found := tbl.FindTemp(added.TempID())
	assert.True(t, found)
	assert.Equal(t, Unchanged, unchanged.State())
}

func TestTable_Changes_NoKeyColumn(t *testing.T) {
	tbl, err := New("Note", []Column{{Name: "Text"}})
	require.NoError(t, err)
	r := fillRow(t, tbl, map[string]string{"Text": "a"})
	require.NoError(t, r.Set("Text", "b"))

	changes := tbl.Changes()
	require.Len(t, changes, 1)
	assert.False(t, changes[0].HasKey)
}

func TestTable_AcceptChanges(t *testing.T) {
	tbl := newLeadTable(t)
	modified := fillRow(t, tbl, map[string]string{"Id": "k1"})
	deleted := fillRow(t, tbl, map[string]string{"Id": "k2"})
	added, err := tbl.Append(map[string]string{"Id": "k3"})
	require.NoError(t, err)

	require.NoError(t, modified.Set("FirstName", "x"))
	require.NoError(t, deleted.Delete())
	require.True(t, tbl.HasChanges())

	tbl.AcceptChanges()

	assert.False(t, tbl.HasChanges())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, Unchanged, modified.State())
	assert.Equal(t, Unchanged, added.State())
	assert.Equal(t, Detached, deleted.State())

	orig, _ := modified.Original("FirstName")
	assert.Equal(t, "x", orig)
}

func TestTable_RejectChanges(t *testing.T) {
	tbl := newLeadTable(t)
	modified := fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "Old"})
	deleted := fillRow(t, tbl, map[string]string{"Id": "k2"})
	_, err := tbl.Append(map[string]string{"Id": "k3"})
	require.NoError(t, err)

	require.NoError(t, modified.Set("FirstName", "New"))
	require.NoError(t, deleted.Delete())

	tbl.RejectChanges()

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, Unchanged, modified.State())
	assert.Equal(t, Unchanged, deleted.State())
	v, _ := modified.Get("FirstName")
	assert.Equal(t, "Old", v)
}

func TestTable_Find(t *testing.T) {
	tbl := newLeadTable(t)
	fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "A"})
	gone := fillRow(t, tbl, map[string]string{"Id": "k2"})
	require.NoError(t, gone.Delete())

	r, ok := tbl.Find("k1")
	require.True(t, ok)
	v, _ := r.Get("FirstName")
	assert.Equal(t, "A", v)

	_, ok = tbl.Find("k2")
	assert.False(t, ok, "удаленная строка не находится")
}

func TestSet(t *testing.T) {
	set := NewSet()
	a := newLeadTable(t)
	b, err := New("Contact", nil)
	require.NoError(t, err)

	require.NoError(t, set.Add(a))
	require.NoError(t, set.Add(b))
	assert.ErrorIs(t, set.Add(newLeadTable(t)), ErrDuplicateTable)
	assert.Equal(t, []string{"Lead", "Contact"}, set.Names())

	got, ok := set.Table("Lead")
	require.True(t, ok)
	assert.Same(t, a, got)

	set.Remove("Lead")
	_, ok = set.Table("Lead")
	assert.False(t, ok)
	assert.Equal(t, []string{"Contact"}, set.Names())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tbl := newLeadTable(t)
	fillRow(t, tbl, map[string]string{"Id": "k0", "FirstName": "Same"})
	modified := fillRow(t, tbl, map[string]string{"Id": "k1", "FirstName": "Old"})
	deleted := fillRow(t, tbl, map[string]string{"Id": "k2"})
	added, err := tbl.Append(map[string]string{"FirstName": "New"})
	require.NoError(t, err)
	require.NoError(t, modified.Set("FirstName", "Changed"))
	require.NoError(t, deleted.Delete())

	data, err := json.Marshal(tbl.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"modified"`)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))

	restored, err := FromSnapshot(&snap)
	require.NoError(t, err)

	assert.Equal(t, tbl.Columns(), restored.Columns())
	require.Equal(t, tbl.Len(), restored.Len())
	for i, r := range tbl.Rows() {
		got := restored.Rows()[i]
		assert.Equal(t, r.State(), got.State())
		assert.Equal(t, r.Values(), got.Values())
		assert.Equal(t, r.TempID(), got.TempID())
	}

	changes := restored.Changes()
	require.Len(t, changes, 3)
	assert.Equal(t, "k1", changes[0].Key)
	assert.Equal(t, added.TempID(), changes[2].TempID)
}

func TestFromSnapshot_Invalid(t *testing.T) {
	_, err := FromSnapshot(&Snapshot{
		Name:    "Lead",
		Columns: []Column{{Name: "Id"}},
		Rows:    []RowSnapshot{{State: Unchanged, Values: map[string]string{"Other": "x"}}},
	})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = FromSnapshot(&Snapshot{
		Name:    "Lead",
		Columns: []Column{{Name: "Id"}},
		Rows:    []RowSnapshot{{State: Detached}},
	})
	assert.ErrorIs(t, err, ErrRowDetached)
}

func TestRowState_Text(t *testing.T) {
	var s RowState
	require.NoError(t, s.UnmarshalText([]byte("deleted")))
	assert.Equal(t, Deleted, s)
	assert.Error(t, s.UnmarshalText([]byte("gone")))
	assert.Equal(t, "RowState(9)", RowState(9).String())
	assert.Equal(t, "insert", OpInsert.String())
}

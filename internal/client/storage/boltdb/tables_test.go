package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/client/table"
)

func TestTables_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	tbl, err := table.New("Lead", []table.Column{{Name: "Id", PrimaryKey: true}, {Name: "FirstName"}})
	require.NoError(t, err)
	row, err := tbl.Append(map[string]string{"Id": "k1", "FirstName": "Old"})
	require.NoError(t, err)
	row.AcceptChanges()
	require.NoError(t, row.Set("FirstName", "New"))
	_, err = tbl.Append(map[string]string{"FirstName": "Added"})
	require.NoError(t, err)

	require.NoError(t, store.SaveTable(ctx, tbl.Snapshot()))

	snap, err := store.LoadTable(ctx, "Lead")
	require.NoError(t, err)

	restored, err := table.FromSnapshot(snap)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())
	assert.Equal(t, table.Modified, restored.Rows()[0].State())
	assert.Equal(t, table.Added, restored.Rows()[1].State())

	orig, ok := restored.Rows()[0].Original("FirstName")
	require.True(t, ok)
	assert.Equal(t, "Old", orig)
}

func TestTables_ListDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, name := range []string{"Lead", "Contact"} {
		tbl, err := table.New(name, nil)
		require.NoError(t, err)
		require.NoError(t, store.SaveTable(ctx, tbl.Snapshot()))
	}

	names, err := store.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Contact", "Lead"}, names)

	require.NoError(t, store.DeleteTable(ctx, "Lead"))
	require.NoError(t, store.DeleteTable(ctx, "Lead"), "удаление отсутствующего снимка не ошибка")

	_, err = store.LoadTable(ctx, "Lead")
	assert.ErrorIs(t, err, storage.ErrTableNotFound)

	assert.Error(t, store.SaveTable(ctx, &table.Snapshot{}))
}

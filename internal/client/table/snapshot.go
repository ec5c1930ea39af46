package table

import (
	"fmt"
	"maps"
	"time"
)

// Snapshot сериализуемое состояние таблицы, включая состояния строк
type Snapshot struct {
	SavedAt time.Time     `json:"saved_at"`
	Name    string        `json:"name"`
	Columns []Column      `json:"columns"`
	Rows    []RowSnapshot `json:"rows"`
}

// RowSnapshot сериализуемое состояние строки
type RowSnapshot struct {
	Values   map[string]string `json:"values"`
	Original map[string]string `json:"original,omitempty"`
	TempID   string            `json:"temp_id"`
	State    RowState          `json:"state"`
}

// Snapshot снимает состояние таблицы
func (t *Table) Snapshot() *Snapshot {
	snap := &Snapshot{
		Name:    t.name,
		Columns: t.Columns(),
		Rows:    make([]RowSnapshot, 0, len(t.rows)),
		SavedAt: time.Now().UTC(),
	}
	for _, r := range t.rows {
		snap.Rows = append(snap.Rows, RowSnapshot{
			TempID:   r.tempID,
			State:    r.state,
			Values:   maps.Clone(r.current),
			Original: maps.Clone(r.original),
		})
	}
	return snap
}

// FromSnapshot восстанавливает таблицу из снимка без изменения состояний строк
func FromSnapshot(snap *Snapshot) (*Table, error) {
	t, err := New(snap.Name, snap.Columns)
	if err != nil {
		return nil, err
	}

	for i, rs := range snap.Rows {
		if rs.State == Detached {
			return nil, fmt.Errorf("row %d: %w", i, ErrRowDetached)
		}
		for col := range rs.Values {
			if _, ok := t.index[col]; !ok {
				return nil, fmt.Errorf("row %d: %w: %q", i, ErrUnknownColumn, col)
			}
		}
		r := &Row{
			table:    t,
			tempID:   rs.TempID,
			state:    rs.State,
			current:  maps.Clone(rs.Values),
			original: maps.Clone(rs.Original),
		}
		if r.current == nil {
			r.current = make(map[string]string)
		}
		t.rows = append(t.rows, r)
	}

	return t, nil
}

package table

import (
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"
)

// Column описание колонки таблицы
type Column struct {
	Name       string `json:"name"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
}

// Table таблица с отслеживанием изменений строк.
// Table не безопасна для конкурентного использования.
type Table struct {
	index   map[string]int
	name    string
	columns []Column
	rows    []*Row
}

// New создает пустую таблицу. Допускается не более одной ключевой колонки,
// значение ключа может отсутствовать до создания записи на сервере.
func New(name string, columns []Column) (*Table, error) {
	t := &Table{
		name:    name,
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	hasKey := false
	for _, col := range columns {
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("table %q: %w: %q", name, ErrDuplicateColumn, col.Name)
		}
		if col.PrimaryKey {
			if hasKey {
				return nil, fmt.Errorf("table %q: %w", name, ErrMultipleKeys)
			}
			hasKey = true
		}
		t.index[col.Name] = len(t.columns)
		t.columns = append(t.columns, col)
	}

	return t, nil
}

// Name возвращает имя таблицы
func (t *Table) Name() string {
	return t.name
}

// Columns возвращает копию списка колонок
func (t *Table) Columns() []Column {
	return slices.Clone(t.columns)
}

// Column возвращает колонку по имени
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// PrimaryKey возвращает ключевую колонку, если она есть
func (t *Table) PrimaryKey() (Column, bool) {
	for _, col := range t.columns {
		if col.PrimaryKey {
			return col, true
		}
	}
	return Column{}, false
}

// NewRow создает строку в состоянии Detached
func (t *Table) NewRow() *Row {
	return &Row{
		table:   t,
		tempID:  ulid.Make().String(),
		current: make(map[string]string),
		state:   Detached,
	}
}

// Add добавляет Detached строку в таблицу, строка становится Added
func (t *Table) Add(r *Row) error {
	if r.table != t {
		return ErrForeignRow
	}
	if r.state != Detached {
		return fmt.Errorf("add row: row is already %s", r.state)
	}
	r.state = Added
	r.original = nil
	t.rows = append(t.rows, r)
	return nil
}

// Append создает строку с заданными значениями и добавляет ее в таблицу
func (t *Table) Append(values map[string]string) (*Row, error) {
	r := t.NewRow()
	for col, v := range values {
		if err := r.Set(col, v); err != nil {
			return nil, err
		}
	}
	if err := t.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Rows возвращает строки в порядке добавления, включая Deleted
func (t *Table) Rows() []*Row {
	return slices.Clone(t.rows)
}

// Len возвращает количество строк, включая Deleted
func (t *Table) Len() int {
	return len(t.rows)
}

// Find ищет не удаленную строку по текущему значению ключа
func (t *Table) Find(key string) (*Row, bool) {
	for _, r := range t.rows {
		if r.state == Deleted {
			continue
		}
		if k, ok := r.Key(); ok && k == key {
			return r, true
		}
	}
	return nil, false
}

// FindTemp ищет строку по временному идентификатору
func (t *Table) FindTemp(tempID string) (*Row, bool) {
	for _, r := range t.rows {
		if r.tempID == tempID {
			return r, true
		}
	}
	return nil, false
}

// HasChanges сообщает, есть ли строки с непринятыми изменениями
func (t *Table) HasChanges() bool {
	for _, r := range t.rows {
		if r.state != Unchanged {
			return true
		}
	}
	return false
}

// AcceptChanges фиксирует все строки таблицы
func (t *Table) AcceptChanges() {
	for _, r := range slices.Clone(t.rows) {
		r.AcceptChanges()
	}
}

// RejectChanges откатывает все строки таблицы
func (t *Table) RejectChanges() {
	for _, r := range slices.Clone(t.rows) {
		r.RejectChanges()
	}
}

// Clear удаляет все строки без отслеживания
func (t *Table) Clear() {
	for _, r := range t.rows {
		r.state = Detached
	}
	t.rows = nil
}

func (t *Table) remove(r *Row) {
	t.rows = slices.DeleteFunc(t.rows, func(x *Row) bool { return x == r })
}

package table

import (
	"fmt"
	"maps"
)

// Row строка таблицы. Отсутствующее значение означает null.
type Row struct {
	table    *Table
	current  map[string]string
	original map[string]string
	tempID   string
	state    RowState
}

// State возвращает текущее состояние строки
func (r *Row) State() RowState {
	return r.state
}

// TempID возвращает временный идентификатор строки (ULID), назначенный при создании
func (r *Row) TempID() string {
	return r.tempID
}

// Get возвращает текущее значение колонки; false означает null
func (r *Row) Get(column string) (string, bool) {
	v, ok := r.current[column]
	return v, ok
}

// Original возвращает значение колонки на момент последнего AcceptChanges
func (r *Row) Original(column string) (string, bool) {
	v, ok := r.original[column]
	return v, ok
}

// Values возвращает копию текущих значений
func (r *Row) Values() map[string]string {
	return maps.Clone(r.current)
}

// Key возвращает текущее значение ключевой колонки
func (r *Row) Key() (string, bool) {
	col, ok := r.table.PrimaryKey()
	if !ok {
		return "", false
	}
	return r.Get(col.Name)
}

// OriginalKey возвращает значение ключевой колонки до локальных изменений.
// Для Modified и Deleted строк именно оно адресует запись на сервере.
func (r *Row) OriginalKey() (string, bool) {
	col, ok := r.table.PrimaryKey()
	if !ok {
		return "", false
	}
	return r.Original(col.Name)
}

// Set присваивает значение колонке.
// Unchanged строка становится Modified, Added остается Added.
// Detached строка остается Detached до Table.Add.
func (r *Row) Set(column, value string) error {
	return r.assign(column, &value)
}

// SetNull сбрасывает значение колонки в null
func (r *Row) SetNull(column string) error {
	return r.assign(column, nil)
}

func (r *Row) assign(column string, value *string) error {
	if r.state == Deleted {
		return fmt.Errorf("set %q: %w", column, ErrRowDeleted)
	}
	if _, ok := r.table.Column(column); !ok {
		return fmt.Errorf("set %q: %w", column, ErrUnknownColumn)
	}

	if value == nil {
		delete(r.current, column)
	} else {
		r.current[column] = *value
	}

	if r.state == Unchanged {
		r.state = Modified
	}
	return nil
}

// Delete помечает строку на удаление.
// Added строка удаляется из таблицы сразу, повторный Delete для Deleted ничего не делает.
func (r *Row) Delete() error {
	switch r.state {
	case Detached:
		return ErrRowDetached
	case Added:
		r.table.remove(r)
		r.state = Detached
	case Unchanged, Modified:
		r.state = Deleted
	case Deleted:
	}
	return nil
}

// Overwrite заменяет значения колонок, известных таблице, без смены состояния.
// Используется для записи значений, сгенерированных сервером.
func (r *Row) Overwrite(values map[string]string) {
	for _, col := range r.table.columns {
		if v, ok := values[col.Name]; ok {
			r.current[col.Name] = v
		} else {
			delete(r.current, col.Name)
		}
	}
}

// AcceptChanges фиксирует строку: Added и Modified становятся Unchanged,
// Deleted удаляется из таблицы.
func (r *Row) AcceptChanges() {
	switch r.state {
	case Added, Modified:
		r.original = maps.Clone(r.current)
		r.state = Unchanged
	case Deleted:
		r.table.remove(r)
		r.state = Detached
	case Detached, Unchanged:
	}
}

// RejectChanges откатывает строку к последнему принятому состоянию
func (r *Row) RejectChanges() {
	switch r.state {
	case Added:
		r.table.remove(r)
		r.state = Detached
	case Modified, Deleted:
		r.current = maps.Clone(r.original)
		r.state = Unchanged
	case Detached, Unchanged:
	}
}

package table

import "fmt"

// Op тип изменения в журнале
type Op int

const (
	// OpInsert строка добавлена локально
	OpInsert Op = iota + 1
	// OpUpdate строка изменена локально
	OpUpdate
	// OpDelete строка удалена локально
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change запись журнала изменений таблицы
type Change struct {
	Row *Row
	// Key исходное значение ключа для update и delete
	Key string
	// TempID временный идентификатор для insert
	TempID string
	Op     Op
	// HasKey false, если у строки нет исходного ключа
	HasKey bool
}

// Changes возвращает журнал изменений в порядке строк таблицы.
// Unchanged строки в журнал не попадают.
func (t *Table) Changes() []Change {
	var changes []Change
	for _, r := range t.rows {
		var c Change
		switch r.state {
		case Added:
			c = Change{Op: OpInsert, TempID: r.tempID}
		case Modified:
			c = Change{Op: OpUpdate}
		case Deleted:
			c = Change{Op: OpDelete}
		default:
			continue
		}
		c.Row = r
		if c.Op != OpInsert {
			c.Key, c.HasKey = r.OriginalKey()
		}
		changes = append(changes, c)
	}
	return changes
}

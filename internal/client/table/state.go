package table

import "fmt"

// RowState состояние строки относительно последнего AcceptChanges
type RowState int

const (
	// Detached строка создана, но не добавлена в таблицу ("(new row)")
	Detached RowState = iota
	// Unchanged строка совпадает с последним принятым состоянием
	Unchanged
	// Added строка добавлена локально и еще не создана на сервере
	Added
	// Modified строка изменена локально
	Modified
	// Deleted строка помечена на удаление
	Deleted
)

var stateNames = [...]string{"detached", "unchanged", "added", "modified", "deleted"}

func (s RowState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("RowState(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s RowState) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stateNames) {
		return nil, fmt.Errorf("invalid row state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *RowState) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = RowState(i)
			return nil
		}
	}
	return fmt.Errorf("invalid row state %q", string(text))
}

package table

import (
	"fmt"
	"slices"
)

// Set реестр таблиц по имени
type Set struct {
	tables map[string]*Table
	order  []string
}

// NewSet создает пустой реестр
func NewSet() *Set {
	return &Set{tables: make(map[string]*Table)}
}

// Table возвращает таблицу по имени
func (s *Set) Table(name string) (*Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Add регистрирует таблицу
func (s *Set) Add(t *Table) error {
	if _, ok := s.tables[t.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTable, t.name)
	}
	s.tables[t.name] = t
	s.order = append(s.order, t.name)
	return nil
}

// Remove удаляет таблицу из реестра
func (s *Set) Remove(name string) {
	if _, ok := s.tables[name]; !ok {
		return
	}
	delete(s.tables, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
}

// Names возвращает имена таблиц в порядке регистрации
func (s *Set) Names() []string {
	return slices.Clone(s.order)
}

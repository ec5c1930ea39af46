// Package schema describes record shapes declaratively and resolves their
// primary-key field.
package schema

import (
	"fmt"
	"slices"
	"sync"
)

// DefaultKeyAlias is the remote field reserved for the record identifier.
const DefaultKeyAlias = "io_uuid"

// Field declares one field of a record shape.
type Field struct {
	Name       string // local column name, e.g. "FirstName"
	Alias      string // remote field name, e.g. "io_first_name"
	PrimaryKey bool
	Writable   bool
}

// Shape is a named, ordered list of fields.
type Shape struct {
	Name   string
	Fields []Field
}

// Aliases returns remote field names in declaration order.
func (s Shape) Aliases() []string {
	aliases := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		aliases = append(aliases, f.remoteName())
	}
	return aliases
}

// Field looks a field up by its local name.
func (s Shape) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (f Field) remoteName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FieldDescriptor is the resolved view of a field used to build table columns.
type FieldDescriptor struct {
	Name         string
	Alias        string
	IsPrimaryKey bool
	Writable     bool
}

// Describe resolves the shape with the default key alias.
func Describe(shape Shape) ([]FieldDescriptor, error) {
	return describe(shape, DefaultKeyAlias)
}

func describe(shape Shape, keyAlias string) ([]FieldDescriptor, error) {
	if shape.Name == "" {
		return nil, fmt.Errorf("%w: shape name is empty", ErrSchema)
	}

	seen := make(map[string]struct{}, len(shape.Fields))
	declared := -1
	byAlias := -1

	for i, f := range shape.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrSchema, shape.Name, i)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrSchema, shape.Name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.PrimaryKey {
			if declared >= 0 {
				return nil, fmt.Errorf("%w: %s: more than one primary key (%s, %s)",
					ErrSchema, shape.Name, shape.Fields[declared].Name, f.Name)
			}
			declared = i
		}
		if keyAlias != "" && f.remoteName() == keyAlias && byAlias < 0 {
			byAlias = i
		}
	}

	// Явно объявленный ключ важнее зарезервированного alias
	key := declared
	if key < 0 {
		key = byAlias
	}

	descriptors := make([]FieldDescriptor, len(shape.Fields))
	for i, f := range shape.Fields {
		descriptors[i] = FieldDescriptor{
			Name:         f.Name,
			Alias:        f.remoteName(),
			IsPrimaryKey: i == key,
			Writable:     f.Writable,
		}
	}

	return descriptors, nil
}

// PrimaryKey returns the key descriptor, if any.
func PrimaryKey(descriptors []FieldDescriptor) (FieldDescriptor, bool) {
	for _, d := range descriptors {
		if d.IsPrimaryKey {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}

// Mapper caches descriptors per shape name. Safe for concurrent use.
// Имя формы должно быть уникальным: форма с тем же именем, но другими полями отклоняется.
type Mapper struct {
	keyAlias string
	cache    map[string]mapperEntry
	mu       sync.Mutex
}

type mapperEntry struct {
	fields      []Field
	descriptors []FieldDescriptor
}

// NewMapper creates a mapper that falls back to keyAlias when a shape declares
// no primary key. An empty keyAlias disables the fallback.
func NewMapper(keyAlias string) *Mapper {
	return &Mapper{
		keyAlias: keyAlias,
		cache:    make(map[string]mapperEntry),
	}
}

// Describe returns a copy of the cached descriptors for shape, computing them on first use.
func (m *Mapper) Describe(shape Shape) ([]FieldDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.cache[shape.Name]; ok {
		if !slices.Equal(cached.fields, shape.Fields) {
			return nil, fmt.Errorf("%w: %s: shape already registered with different fields", ErrSchema, shape.Name)
		}
		return slices.Clone(cached.descriptors), nil
	}

	descriptors, err := describe(shape, m.keyAlias)
	if err != nil {
		return nil, err
	}
	m.cache[shape.Name] = mapperEntry{
		fields:      slices.Clone(shape.Fields),
		descriptors: descriptors,
	}
	return slices.Clone(descriptors), nil
}

package sync

import (
	"fmt"
	"maps"
	"slices"

	"github.com/iudanet/recordsync/internal/schema"
	"github.com/iudanet/recordsync/pkg/api"
)

// Mapping связывает формы записей со строками таблицы.
// Имена колонок совпадают с именами полей (Field.Name) обеих форм.
type Mapping[In, Out any] struct {
	// ToRow возвращает значения входящей записи по именам колонок; отсутствие ключа = null
	ToRow func(In) map[string]string
	// FromRow строит исходящую запись из значений строки,
	// уже ограниченных полями исходящей формы
	FromRow func(values map[string]string) (Out, error)
	// Inbound форма записей чтения и ответов на запись; ее имя задает имя таблицы
	Inbound schema.Shape
	// Outbound форма тела create и update
	Outbound schema.Shape
}

func (m Mapping[In, Out]) validate() error {
	if m.ToRow == nil || m.FromRow == nil {
		return fmt.Errorf("%w: ToRow and FromRow are required", ErrMapping)
	}
	if m.Inbound.Name == "" {
		return fmt.Errorf("%w: inbound shape has no name", ErrMapping)
	}
	return nil
}

// DynamicShapes строит формы для объекта, известного только во время выполнения.
// Колонки называются так же, как поля на сервере; поля из readOnly не отправляются.
func DynamicShapes(identifier string, fields []string, keyAlias string, readOnly []string) (in, out schema.Shape) {
	in = schema.Shape{Name: identifier}
	out = schema.Shape{Name: identifier + "_data"}

	for _, f := range fields {
		writable := !slices.Contains(readOnly, f)
		in.Fields = append(in.Fields, schema.Field{
			Name:       f,
			Alias:      f,
			PrimaryKey: keyAlias != "" && f == keyAlias,
			Writable:   writable,
		})
		if writable {
			out.Fields = append(out.Fields, schema.Field{Name: f, Alias: f, Writable: true})
		}
	}
	return in, out
}

// DynamicMapping отображение обобщенных записей api.Record.
// Значения приводятся к строкам по правилам api.Record.Value.
func DynamicMapping(identifier string, fields []string, keyAlias string, readOnly []string) Mapping[api.Record, map[string]string] {
	in, out := DynamicShapes(identifier, fields, keyAlias, readOnly)
	aliases := in.Aliases()

	return Mapping[api.Record, map[string]string]{
		Inbound:  in,
		Outbound: out,
		ToRow: func(rec api.Record) map[string]string {
			row := make(map[string]string, len(aliases))
			for _, alias := range aliases {
				if v, ok := rec.Value(alias); ok {
					row[alias] = v
				}
			}
			return row
		},
		FromRow: func(values map[string]string) (map[string]string, error) {
			return maps.Clone(values), nil
		},
	}
}

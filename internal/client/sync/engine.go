// Package sync зеркалирует записи сервера в таблицу с отслеживанием изменений
// и отправляет локальные изменения обратно.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/recordsync/internal/client/records"
	"github.com/iudanet/recordsync/internal/client/table"
	"github.com/iudanet/recordsync/internal/schema"
)

// Result итог отправки изменений
type Result struct {
	Created int
	Updated int
	Deleted int
}

// Total количество обработанных строк
func (r Result) Total() int {
	return r.Created + r.Updated + r.Deleted
}

// Engine синхронизирует одну таблицу с объектом сервера.
// Engine не безопасен для конкурентного использования.
type Engine[In, Out any] struct {
	client  *records.Client[In, Out]
	mapper  *schema.Mapper
	logger  *slog.Logger
	mapping Mapping[In, Out]
}

// NewEngine создает движок. mapper может быть nil, тогда ключ ищется по schema.DefaultKeyAlias.
func NewEngine[In, Out any](client *records.Client[In, Out], mapping Mapping[In, Out], mapper *schema.Mapper, logger *slog.Logger) (*Engine[In, Out], error) {
	if err := mapping.validate(); err != nil {
		return nil, err
	}
	if mapper == nil {
		mapper = schema.NewMapper(schema.DefaultKeyAlias)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine[In, Out]{
		client:  client,
		mapping: mapping,
		mapper:  mapper,
		logger:  logger,
	}, nil
}

// TableName имя таблицы движка, совпадает с именем входящей формы
func (e *Engine[In, Out]) TableName() string {
	return e.mapping.Inbound.Name
}

// FillSchema создает пустую таблицу в set, если ее еще нет
func (e *Engine[In, Out]) FillSchema(set *table.Set) (*table.Table, error) {
	if t, ok := set.Table(e.TableName()); ok {
		return t, nil
	}

	descriptors, err := e.mapper.Describe(e.mapping.Inbound)
	if err != nil {
		return nil, err
	}

	columns := make([]table.Column, len(descriptors))
	for i, d := range descriptors {
		columns[i] = table.Column{Name: d.Name, PrimaryKey: d.IsPrimaryKey}
	}

	t, err := table.New(e.TableName(), columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrSchema, err)
	}
	if err := set.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Fill загружает все записи объекта и добавляет их в таблицу, затем фиксирует всю таблицу:
// локальные изменения, сделанные до Fill, тоже становятся Unchanged.
// Повторный вызов добавляет строки заново. Возвращает количество загруженных записей.
func (e *Engine[In, Out]) Fill(ctx context.Context, set *table.Set) (int, error) {
	t, err := e.FillSchema(set)
	if err != nil {
		return 0, err
	}

	items, err := e.client.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("fill %s: %w", t.Name(), err)
	}

	for i, item := range items {
		// поля, которых нет среди колонок, отбрасываются
		row := t.NewRow()
		row.Overwrite(e.mapping.ToRow(item))
		if err := t.Add(row); err != nil {
			return i, fmt.Errorf("fill %s: record %d: %w", t.Name(), i, err)
		}
	}
	t.AcceptChanges()

	e.logger.Info("table filled", "table", t.Name(), "identifier", e.client.Identifier(), "records", len(items))
	return len(items), nil
}

// Update отправляет изменения таблицы движка из set
func (e *Engine[In, Out]) Update(ctx context.Context, set *table.Set) (Result, error) {
	t, ok := set.Table(e.TableName())
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrNoTable, e.TableName())
	}
	return e.UpdateTable(ctx, t)
}

// UpdateTable отправляет изменения строк в порядке таблицы:
// Added создается, Modified обновляется по исходному ключу, Deleted удаляется.
// Значения, возвращенные сервером, записываются в строку.
// Каждая строка фиксируется сразу после успешного запроса, поэтому после ошибки
// повторный вызов обработает только оставшиеся строки.
func (e *Engine[In, Out]) UpdateTable(ctx context.Context, t *table.Table) (Result, error) {
	var res Result

	_, keyed := t.PrimaryKey()

	for _, ch := range t.Changes() {
		if ch.Op != table.OpInsert {
			if !keyed {
				return res, fmt.Errorf("%w: table %s has no primary key to %s a row", schema.ErrSchema, t.Name(), ch.Op)
			}
			if !ch.HasKey {
				return res, fmt.Errorf("%w: table %s: row %s has no key value to %s", schema.ErrSchema, t.Name(), ch.Row.TempID(), ch.Op)
			}
		}

		if err := e.apply(ctx, ch); err != nil {
			e.logger.Warn("row sync failed", "table", t.Name(), "op", ch.Op.String(), "key", ch.Key, "error", err)
			return res, fmt.Errorf("update %s: %s row: %w", t.Name(), ch.Op, err)
		}

		switch ch.Op {
		case table.OpInsert:
			res.Created++
		case table.OpUpdate:
			res.Updated++
		case table.OpDelete:
			res.Deleted++
		}
		ch.Row.AcceptChanges()
	}

	t.AcceptChanges()

	e.logger.Info("table updated", "table", t.Name(), "created", res.Created, "updated", res.Updated, "deleted", res.Deleted)
	return res, nil
}

func (e *Engine[In, Out]) apply(ctx context.Context, ch table.Change) error {
	switch ch.Op {
	case table.OpDelete:
		e.logger.Debug("delete row", "key", ch.Key)
		return e.client.Delete(ctx, ch.Key)

	case table.OpInsert:
		payload, err := e.payload(ch.Row)
		if err != nil {
			return err
		}
		e.logger.Debug("create row", "temp_id", ch.TempID)
		created, err := e.client.Create(ctx, payload)
		if err != nil {
			return err
		}
		ch.Row.Overwrite(e.mapping.ToRow(created))
		return nil

	case table.OpUpdate:
		payload, err := e.payload(ch.Row)
		if err != nil {
			return err
		}
		e.logger.Debug("update row", "key", ch.Key)
		updated, err := e.client.Update(ctx, payload, ch.Key)
		if err != nil {
			return err
		}
		ch.Row.Overwrite(e.mapping.ToRow(updated))
		return nil
	}

	return fmt.Errorf("unexpected change %s", ch.Op)
}

// payload строит исходящую запись только из присутствующих полей исходящей формы
func (e *Engine[In, Out]) payload(row *table.Row) (Out, error) {
	values := make(map[string]string, len(e.mapping.Outbound.Fields))
	for _, f := range e.mapping.Outbound.Fields {
		if v, ok := row.Get(f.Name); ok {
			values[f.Name] = v
		}
	}

	out, err := e.mapping.FromRow(values)
	if err != nil {
		return out, fmt.Errorf("build payload: %w", err)
	}
	return out, nil
}

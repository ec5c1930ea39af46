package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/recordsync/internal/client/records"
	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/client/sync"
	"github.com/iudanet/recordsync/internal/client/table"
	"github.com/iudanet/recordsync/internal/schema"
	"github.com/iudanet/recordsync/pkg/api"
)

type (
	recordClient = records.Client[api.Record, map[string]string]
	recordEngine = sync.Engine[api.Record, map[string]string]
)

// remote собирает клиент записей и движок синхронизации для объекта из настроек.
// authn может быть nil, если запросы к серверу не нужны (FillSchema).
func (c *Cli) remote(authn records.Authenticator) (*recordClient, *recordEngine, error) {
	service := records.NewService(c.client, authn, c.logger)
	client := records.NewClient[api.Record, map[string]string](service, c.cfg.Object, c.cfg.Fields...)
	mapping := sync.DynamicMapping(c.cfg.Object, c.cfg.Fields, c.cfg.KeyAlias, c.cfg.ReadOnly)

	engine, err := sync.NewEngine(client, mapping, schema.NewMapper(c.cfg.KeyAlias), c.logger)
	if err != nil {
		return nil, nil, err
	}
	return client, engine, nil
}

// loadSet восстанавливает локальную таблицу объекта.
// Если таблица еще не загружалась, set пустой.
func (c *Cli) loadSet(ctx context.Context) (*table.Set, error) {
	if err := c.cfg.RequireObject(); err != nil {
		return nil, err
	}

	set := table.NewSet()
	snap, err := c.storage.LoadTable(ctx, c.cfg.Object)
	if errors.Is(err, storage.ErrTableNotFound) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}

	t, err := table.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore table: %w", err)
	}

	names := make([]string, 0, len(t.Columns()))
	for _, col := range t.Columns() {
		names = append(names, col.Name)
	}
	if !slices.Equal(names, c.cfg.Fields) {
		return nil, fmt.Errorf("local table %s has columns %s, not %s; run 'recordsync reset -drop' or use the same fields",
			t.Name(), strings.Join(names, ","), strings.Join(c.cfg.Fields, ","))
	}

	if err := set.Add(t); err != nil {
		return nil, err
	}
	return set, nil
}

// localTable возвращает загруженную таблицу объекта
func (c *Cli) localTable(ctx context.Context) (*table.Table, error) {
	set, err := c.loadSet(ctx)
	if err != nil {
		return nil, err
	}
	t, ok := set.Table(c.cfg.Object)
	if !ok {
		return nil, fmt.Errorf("table %s is not loaded. Please run 'recordsync fill' first", c.cfg.Object)
	}
	return t, nil
}

func (c *Cli) saveTable(ctx context.Context, t *table.Table) error {
	snap := t.Snapshot()
	snap.SavedAt = c.now().UTC()
	if err := c.storage.SaveTable(ctx, snap); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}

// findRow ищет строку по ключу, затем по временному идентификатору
func findRow(t *table.Table, ref string) (*table.Row, error) {
	if row, ok := t.Find(ref); ok {
		return row, nil
	}
	if row, ok := t.FindTemp(ref); ok && row.State() != table.Deleted {
		return row, nil
	}
	return nil, fmt.Errorf("row %q not found", ref)
}

// parseAssignments разбирает аргументы вида field=value; "field=" означает null
func parseAssignments(args []string) (map[string]*string, []string, error) {
	values := make(map[string]*string, len(args))
	order := make([]string, 0, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, nil, fmt.Errorf("invalid assignment %q, expected field=value", arg)
		}
		if _, dup := values[field]; dup {
			return nil, nil, fmt.Errorf("field %q assigned twice", field)
		}
		if value == "" {
			values[field] = nil
		} else {
			values[field] = &value
		}
		order = append(order, field)
	}
	return values, order, nil
}

func applyAssignments(row *table.Row, values map[string]*string, order []string) error {
	for _, field := range order {
		var err error
		if v := values[field]; v != nil {
			err = row.Set(field, *v)
		} else {
			err = row.SetNull(field)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

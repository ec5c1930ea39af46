package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/client/table"
)

func (c *Cli) runFill(ctx context.Context) error {
	set, err := c.loadSet(ctx)
	if err != nil {
		return err
	}
	if t, ok := set.Table(c.cfg.Object); ok {
		if t.HasChanges() {
			return fmt.Errorf("table %s has %d pending change(s). Run 'recordsync push' or 'recordsync reset' first",
				t.Name(), len(t.Changes()))
		}
		// повторная загрузка заменяет таблицу целиком
		set.Remove(t.Name())
	}

	session, err := c.openSession(ctx)
	if err != nil {
		return err
	}
	_, engine, err := c.remote(session)
	if err != nil {
		return err
	}

	c.io.Printf("Loading %s...\n", c.cfg.Object)
	n, err := engine.Fill(ctx, set)
	if serr := c.saveSession(ctx); serr != nil {
		err = errors.Join(err, serr)
	}
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}

	t, _ := set.Table(engine.TableName())
	if err := c.saveTable(ctx, t); err != nil {
		return err
	}
	if err := c.storage.SaveLastSync(ctx, t.Name(), storage.SyncFill, c.now()); err != nil {
		return fmt.Errorf("failed to save sync metadata: %w", err)
	}

	c.io.Printf("✓ Loaded %d record(s) into table %s\n", n, t.Name())
	if _, ok := t.PrimaryKey(); !ok {
		c.io.Printf("Warning: no primary key column (%s), rows can't be edited or removed\n", c.cfg.KeyAlias)
	}
	return nil
}

func (c *Cli) runReset(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "-drop" {
		if err := c.storage.DeleteTable(ctx, c.cfg.Object); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
		c.io.Printf("✓ Local table %s removed\n", c.cfg.Object)
		return nil
	}

	t, err := c.localTable(ctx)
	if err != nil {
		return err
	}
	pending := len(t.Changes())
	t.RejectChanges()
	if err := c.saveTable(ctx, t); err != nil {
		return err
	}
	c.io.Printf("✓ Discarded %d pending change(s)\n", pending)
	return nil
}

// stateMark короткая метка состояния строки для вывода
func stateMark(s table.RowState) string {
	switch s {
	case table.Added:
		return "+"
	case table.Modified:
		return "~"
	case table.Deleted:
		return "-"
	default:
		return " "
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/recordsync/internal/client/table"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing values. Usage: recordsync add field=value...")
	}
	values, order, err := parseAssignments(args)
	if err != nil {
		return err
	}

	set, err := c.loadSet(ctx)
	if err != nil {
		return err
	}
	t, ok := set.Table(c.cfg.Object)
	if !ok {
		// строки можно добавлять до первой загрузки
		_, engine, err := c.remote(nil)
		if err != nil {
			return err
		}
		if t, err = engine.FillSchema(set); err != nil {
			return err
		}
	}

	row := t.NewRow()
	if err := applyAssignments(row, values, order); err != nil {
		return err
	}
	if err := t.Add(row); err != nil {
		return err
	}
	if err := c.saveTable(ctx, t); err != nil {
		return err
	}

	c.io.Printf("✓ Row added (temp id %s). Run 'recordsync push' to create it on the server.\n", row.TempID())
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: recordsync edit <key> field=value...")
	}
	values, order, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	t, err := c.localTable(ctx)
	if err != nil {
		return err
	}
	row, err := findRow(t, args[0])
	if err != nil {
		return err
	}
	if err := applyAssignments(row, values, order); err != nil {
		return err
	}
	if err := c.saveTable(ctx, t); err != nil {
		return err
	}

	c.io.Printf("✓ Row %s updated (%s)\n", args[0], row.State())
	return nil
}

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing key. Usage: recordsync remove <key>")
	}

	t, err := c.localTable(ctx)
	if err != nil {
		return err
	}
	row, err := findRow(t, args[0])
	if err != nil {
		return err
	}

	wasAdded := row.State() == table.Added
	if err := row.Delete(); err != nil {
		return err
	}
	if err := c.saveTable(ctx, t); err != nil {
		return err
	}

	if wasAdded {
		c.io.Printf("✓ Row %s discarded (it was never sent)\n", args[0])
	} else {
		c.io.Printf("✓ Row %s marked as deleted. Run 'recordsync push' to delete it on the server.\n", args[0])
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/recordsync/internal/client/table"
)

func (c *Cli) runList(ctx context.Context) error {
	t, err := c.localTable(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", t.Name())
	c.io.Println()

	if t.Len() == 0 {
		c.io.Println("No rows found.")
		c.io.Println()
		c.io.Println("Use 'recordsync add field=value...' to add your first row.")
		return nil
	}

	columns := t.Columns()
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Name
	}
	c.io.Printf("  %s\n", strings.Join(header, " | "))

	for _, row := range t.Rows() {
		c.io.Printf("%s %s\n", stateMark(row.State()), formatRow(row, columns))
	}

	c.io.Println()
	c.io.Printf("Rows: %d, pending changes: %d\n", t.Len(), len(t.Changes()))
	return nil
}

func formatRow(row *table.Row, columns []table.Column) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		if v, ok := row.Get(col.Name); ok {
			cells[i] = v
		} else {
			cells[i] = "<null>"
		}
	}
	if row.State() == table.Added {
		return strings.Join(cells, " | ") + "  (temp " + row.TempID() + ")"
	}
	return strings.Join(cells, " | ")
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing key. Usage: recordsync get <key>")
	}
	if err := c.cfg.RequireObject(); err != nil {
		return err
	}

	session, err := c.openSession(ctx)
	if err != nil {
		return err
	}
	client, _, err := c.remote(session)
	if err != nil {
		return err
	}

	rec, err := client.ReadOne(ctx, args[0])
	if serr := c.saveSession(ctx); serr != nil {
		c.logger.Warn("session not saved", "error", serr)
	}
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	c.io.Printf("=== %s %s ===\n", c.cfg.Object, args[0])
	for _, field := range client.Fields() {
		if v, ok := rec.Value(field); ok {
			c.io.Printf("%s: %s\n", field, v)
		} else {
			c.io.Printf("%s: <null>\n", field)
		}
	}
	return nil
}

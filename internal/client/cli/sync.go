package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/recordsync/internal/client/storage"
)

func (c *Cli) runPush(ctx context.Context) error {
	c.io.Println("=== Push ===")

	set, err := c.loadSet(ctx)
	if err != nil {
		return err
	}
	t, ok := set.Table(c.cfg.Object)
	if !ok || !t.HasChanges() {
		c.io.Println()
		c.io.Println("✓ Nothing to push")
		return nil
	}

	session, err := c.openSession(ctx)
	if err != nil {
		return err
	}
	_, engine, err := c.remote(session)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Sending %d change(s) to server...\n", len(t.Changes()))

	result, pushErr := engine.Update(ctx, set)

	// уже отправленные строки зафиксированы, сохраняем таблицу и при ошибке
	if err := c.saveTable(ctx, t); err != nil {
		pushErr = errors.Join(pushErr, err)
	}
	if err := c.saveSession(ctx); err != nil {
		pushErr = errors.Join(pushErr, err)
	}

	c.io.Println()
	c.io.Printf("Created: %d\n", result.Created)
	c.io.Printf("Updated: %d\n", result.Updated)
	c.io.Printf("Deleted: %d\n", result.Deleted)

	if pushErr != nil {
		return fmt.Errorf("push failed after %d change(s): %w", result.Total(), pushErr)
	}
	if err := c.storage.SaveLastSync(ctx, t.Name(), storage.SyncPush, c.now()); err != nil {
		return fmt.Errorf("failed to save sync metadata: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Push completed successfully!")
	return nil
}

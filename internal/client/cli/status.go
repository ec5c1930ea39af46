package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/client/table"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session ===")
	c.io.Println()

	authData, err := c.storage.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'recordsync login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to get auth data: %w", err)
	default:
		c.io.Println("Status: Session saved")
		c.io.Printf("Host:      %s\n", authData.Host)
		c.io.Printf("Login:     %s\n", authData.Login)
		c.io.Printf("Client ID: %s\n", authData.ClientID)
		if authData.ExpiresAt > 0 {
			expiresAt := time.Unix(authData.ExpiresAt, 0)
			if remaining := expiresAt.Sub(c.now()); remaining > 0 {
				c.io.Printf("Token expires: %s (%s remaining)\n", expiresAt.Format(time.RFC3339), remaining.Round(time.Second))
			} else {
				c.io.Println("⚠️  Token has expired. It will be renewed on the next request.")
			}
		}
	}

	if c.cfg.Object == "" {
		return nil
	}

	c.io.Println()
	c.io.Printf("=== Table %s ===\n", c.cfg.Object)
	c.io.Println()

	for _, kind := range []storage.SyncKind{storage.SyncFill, storage.SyncPush} {
		at, err := c.storage.GetLastSync(ctx, c.cfg.Object, kind)
		if err != nil {
			return fmt.Errorf("failed to get sync metadata: %w", err)
		}
		if at.IsZero() {
			c.io.Printf("Last %s: never\n", kind)
		} else {
			c.io.Printf("Last %s: %s\n", kind, at.Local().Format(time.RFC3339))
		}
	}

	t, err := c.localTable(ctx)
	if err != nil {
		c.io.Printf("Local table: %v\n", err)
		return nil
	}

	counts := make(map[table.Op]int)
	for _, ch := range t.Changes() {
		counts[ch.Op]++
	}
	c.io.Printf("Rows: %d\n", t.Len())
	if len(counts) == 0 {
		c.io.Println("✓ No pending changes")
		return nil
	}
	c.io.Printf("⚠️  Pending changes: %d insert, %d update, %d delete\n",
		counts[table.OpInsert], counts[table.OpUpdate], counts[table.OpDelete])
	c.io.Println("Run 'recordsync push' to send them to the server.")
	return nil
}

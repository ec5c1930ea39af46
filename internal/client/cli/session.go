package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/recordsync/internal/client/auth"
)

// openSession создает сессию и пытается восстановить сохраненный токен.
// Handshake выполняется лениво, при первом запросе.
func (c *Cli) openSession(ctx context.Context) (*auth.Session, error) {
	if c.session != nil {
		return c.session, nil
	}

	login, password, err := c.credentials()
	if err != nil {
		return nil, err
	}

	session := auth.NewSession(c.client, login, password, c.logger)
	restored, err := auth.NewStore(c.storage).Load(ctx, c.client.BaseURL(), session)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved session: %w", err)
	}
	if restored {
		c.logger.Debug("session restored", "login", login, "client_id", session.ClientID())
	}

	c.session = session
	return session, nil
}

// saveSession сохраняет сессию, если handshake уже выполнен
func (c *Cli) saveSession(ctx context.Context) error {
	if c.session == nil || !c.session.Ready() {
		return nil
	}
	if err := auth.NewStore(c.storage).Save(ctx, c.client.BaseURL(), c.session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	session, err := c.openSession(ctx)
	if err != nil {
		return err
	}

	// login всегда выполняет handshake заново
	session.Invalidate()
	c.io.Println("Authenticating...")
	if err := session.Prepare(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := c.saveSession(ctx); err != nil {
		return err
	}

	st, _ := session.State()
	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Login:     %s\n", session.Login())
	c.io.Printf("Client ID: %s\n", st.ClientID)
	c.io.Printf("Auth host: %s\n", st.AuthHost)
	if !st.ExpiresAt.IsZero() {
		c.io.Printf("Token expires: %s\n", st.ExpiresAt.Format(time.RFC3339))
	}
	c.io.Println()
	c.io.Println("Your session has been saved securely.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := auth.NewStore(c.storage).Forget(ctx); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	if c.session != nil {
		c.session.Invalidate()
	}
	c.io.Println("✓ Logged out. Saved session removed.")
	return nil
}

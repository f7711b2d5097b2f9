package console

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	if err := c.sessions.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if c.sessions.IsAuthenticated() {
		c.io.Printf("Already logged in as %s. Run 'mailerctl logout' to switch users.\n",
			c.sessions.Current().Username)
		return nil
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.sessions.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Login successful. Welcome, %s!\n", c.sessions.Current().Username)

	// Route by configuration existence: a fresh installation goes
	// straight into setup, everything else lands on the dashboard.
	check, err := c.apiClient.CheckEmailConfig(ctx)
	if err != nil {
		c.io.Printf("Warning: could not check configuration: %v\n", err)
		return nil
	}

	if !check.Exists {
		c.io.Println()
		c.io.Println("No configuration found yet. Starting setup...")
		return c.runSetup(ctx)
	}

	c.io.Println("Run 'mailerctl dashboard' to monitor the service.")
	return nil
}

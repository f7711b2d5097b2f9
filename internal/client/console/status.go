package console

import (
	"context"
	"fmt"

	"github.com/iudanet/mailerctl/internal/client/session"
)

// runStatus works without a live backend: it reports the session state
// and whatever snapshot survives in the local cache.
func (c *Cli) runStatus(ctx context.Context) error {
	if err := c.sessions.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	c.io.Println("=== Status ===")
	c.io.Println()

	if c.sessions.IsAuthenticated() {
		current := c.sessions.Current()
		c.io.Printf("Session: logged in as %s\n", current.Username)
		if expiry, ok := session.TokenExpiry(current.Token); ok {
			c.io.Printf("Token:   expires %s\n", expiry.Format("2006-01-02 15:04:05"))
		}
	} else {
		c.io.Println("Session: not logged in")
	}

	if err := c.view.LoadCached(ctx); err != nil {
		c.io.Printf("Warning: %v\n", err)
	}

	snap := c.view.Last()
	if snap == nil {
		c.io.Println()
		c.io.Println("No dashboard data yet. Run 'mailerctl dashboard' to fetch it.")
		return nil
	}

	c.io.Println()
	c.io.Printf("Last refresh: %s\n", snap.FetchedAt.Format("2006-01-02 15:04:05"))
	c.io.Printf("Service:      %s\n", snap.Dashboard.Service.Status)
	c.io.Printf("Emails:       processed=%d sent=%d failed=%d pending=%d\n",
		snap.Dashboard.Service.EmailsProcessed,
		snap.Dashboard.Service.EmailsSent,
		snap.Dashboard.Service.EmailsFailed,
		snap.Dashboard.Service.EmailsPending,
	)

	return nil
}

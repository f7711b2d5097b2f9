package console

import (
	"context"
	"flag"

	"github.com/iudanet/mailerctl/internal/client/dashboard"
	"github.com/iudanet/mailerctl/internal/client/history"
)

// runDashboard is the live view: an immediate refresh, then one per
// interval until the context is cancelled (or count cycles completed,
// which mostly exists for scripting and tests).
func (c *Cli) runDashboard(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	interval := flags.Duration("interval", dashboard.DefaultInterval, "refresh interval")
	count := flags.Int("count", 0, "stop after this many refreshes (0 = run until interrupted)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := c.view.LoadCached(ctx); err != nil {
		c.io.Printf("Warning: %v\n", err)
	}
	if snap := c.view.Last(); snap != nil {
		c.io.Println("Showing cached data while the first refresh runs.")
		if err := c.renderDashboard(snap); err != nil {
			return err
		}
	}

	completed := 0
	var poller *dashboard.Poller
	poller = dashboard.NewPoller(c.view, *interval, func(snap *dashboard.Snapshot, err error) {
		if err != nil {
			c.io.Printf("Refresh failed: %v\n", err)
			if last := c.view.Last(); last != nil {
				c.io.Printf("Showing data from %s.\n", last.FetchedAt.Format("15:04:05"))
			}
		} else {
			if renderErr := c.renderDashboard(snap); renderErr != nil {
				c.io.Printf("Render failed: %v\n", renderErr)
			}
			c.recordPoll(ctx, snap)
		}

		completed++
		if *count > 0 && completed >= *count {
			poller.Stop()
		}
	})

	if *count == 0 {
		c.io.Printf("Refreshing every %s. Press Ctrl+C to exit.\n", *interval)
	}

	poller.Run(ctx)
	return nil
}

// recordPoll appends the cycle to the local history log, best effort.
func (c *Cli) recordPoll(ctx context.Context, snap *dashboard.Snapshot) {
	if c.pollLog == nil {
		return
	}
	err := c.pollLog.Record(ctx, history.Entry{
		RecordedAt:      snap.FetchedAt,
		ServiceStatus:   snap.Dashboard.Service.Status,
		EmailsProcessed: snap.Dashboard.Service.EmailsProcessed,
		EmailsSent:      snap.Dashboard.Service.EmailsSent,
		EmailsFailed:    snap.Dashboard.Service.EmailsFailed,
		EmailsPending:   snap.Dashboard.Service.EmailsPending,
	})
	if err != nil {
		c.io.Printf("Warning: failed to record refresh: %v\n", err)
	}
}

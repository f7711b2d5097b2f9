package console

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := flags.Int("n", 20, "number of entries to show")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if c.pollLog == nil {
		return fmt.Errorf("history database is not available")
	}

	entries, err := c.pollLog.Recent(ctx, *limit)
	if err != nil {
		return err
	}

	return historyTemplate.Execute(c.io, entries)
}

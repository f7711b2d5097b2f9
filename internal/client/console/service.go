package console

import (
	"context"
	"fmt"
)

// runService starts or stops the dispatch service, then refetches the
// dashboard so the reported state is the post-action one. The refetch
// happens even when the control call failed, because a failed call can
// still have changed backend state.
func (c *Cli) runService(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "start" && args[0] != "stop") {
		return fmt.Errorf("usage: mailerctl service start|stop")
	}
	action := args[0]

	c.io.Printf("Sending %s request...\n", action)

	msg, ctlErr := c.view.ServiceControl(ctx, action, c.sessions.Current().Username)

	if _, err := c.view.FetchBatch(ctx); err != nil {
		c.io.Printf("Warning: could not refresh state: %v\n", err)
	}

	if ctlErr != nil {
		return ctlErr
	}

	if msg != "" {
		c.io.Println(msg)
	}
	if snap := c.view.Last(); snap != nil {
		c.io.Printf("Service is now: %s\n", snap.Dashboard.Service.Status)
	}
	return nil
}

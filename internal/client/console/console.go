// Package console implements the mailerctl command surface. Every
// command is a thin interactive wrapper over the client services; all
// failures render as inline messages and the same command can be re-run
// immediately.
package console

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/client/dashboard"
	"github.com/iudanet/mailerctl/internal/client/history"
	"github.com/iudanet/mailerctl/internal/client/iocli"
	"github.com/iudanet/mailerctl/internal/client/session"
)

// Cli bundles the services behind the command surface.
type Cli struct {
	io        iocli.IO
	apiClient *clientapi.Client
	sessions  *session.Service
	view      *dashboard.View
	pollLog   *history.Log
}

// New creates the console. pollLog may be nil when the history database
// could not be opened; everything except the history command works
// without it.
func New(io iocli.IO, apiClient *clientapi.Client, sessions *session.Service, view *dashboard.View, pollLog *history.Log) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		sessions:  sessions,
		view:      view,
		pollLog:   pollLog,
	}
}

// Run dispatches one command. The session bootstrap runs before every
// command, so a persisted session is verified (or discarded) exactly
// once per process start.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.withAuth(ctx, c.runLogout)
	case "status":
		return c.runStatus(ctx)
	case "setup":
		return c.withAuth(ctx, c.runSetup)
	case "dashboard":
		return c.withAuth(ctx, func(ctx context.Context) error {
			return c.runDashboard(ctx, args)
		})
	case "service":
		return c.withAuth(ctx, func(ctx context.Context) error {
			return c.runService(ctx, args)
		})
	case "certs":
		return c.withAuth(ctx, c.runCerts)
	case "pin":
		return c.withAuth(ctx, func(ctx context.Context) error {
			return c.runPin(ctx, args)
		})
	case "config":
		return c.withAuth(ctx, c.runConfig)
	case "history":
		return c.runHistory(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// withAuth restores the session first and refuses protected commands
// when no authenticated session came out of it.
func (c *Cli) withAuth(ctx context.Context, run func(ctx context.Context) error) error {
	if err := c.sessions.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if !c.sessions.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'mailerctl login' first")
	}
	return run(ctx)
}

// PrintUsage writes the command overview.
func (c *Cli) PrintUsage() {
	_ = usageTemplate.Execute(c.io, nil)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/client/console"
	"github.com/iudanet/mailerctl/internal/client/dashboard"
	"github.com/iudanet/mailerctl/internal/client/history"
	"github.com/iudanet/mailerctl/internal/client/iocli"
	"github.com/iudanet/mailerctl/internal/client/session"
	"github.com/iudanet/mailerctl/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// tokenBridge lets the API client read the bearer token from the session
// service even though the session service is constructed after the
// client.
type tokenBridge struct {
	sessions *session.Service
}

func (b *tokenBridge) Token(ctx context.Context) (string, error) {
	if b.sessions == nil {
		return "", nil
	}
	return b.sessions.Token(ctx)
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Dispatch service URL")
	dbPath := flag.String("db", "mailerctl.db", "Path to local session database")
	historyPath := flag.String("history-db", "mailerctl-history.db", "Path to local poll history database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Ctrl+C cancels the context, which stops the dashboard loop.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	bridge := &tokenBridge{}
	apiClient := clientapi.NewClient(*serverURL, bridge)
	sessions := session.NewService(apiClient, boltStorage)
	bridge.sessions = sessions
	view := dashboard.NewView(apiClient, boltStorage)

	// The history log is optional: a broken file must not take the
	// whole console down.
	pollLog, err := history.Open(ctx, *historyPath)
	if err != nil {
		slog.Warn("poll history disabled", "error", err)
		pollLog = nil
	} else {
		defer func() {
			if err := pollLog.Close(); err != nil {
				slog.Error("failed to close history database", "error", err)
			}
		}()
	}

	cli := console.New(stdio, apiClient, sessions, view, pollLog)

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	if err := cli.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("mailerctl\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/mailerctl/internal/client/setup"
)

// runSetup walks the two configuration forms: database connection first,
// gated by a successful connection test, then the send schedule. Nothing
// is written until both forms pass.
func (c *Cli) runSetup(ctx context.Context) error {
	flow := setup.NewFlow(c.apiClient)

	c.io.Println("=== Setup: database connection ===")
	c.io.Println()

	db, err := c.readDatabaseDraft()
	if err != nil {
		return err
	}
	flow.SetDatabase(db)

	c.io.Println()
	c.io.Println("Testing connection...")

	msg, err := flow.TestConnection(ctx)
	if err != nil {
		return err
	}
	if msg != "" {
		c.io.Printf("Connection test passed: %s\n", msg)
	} else {
		c.io.Println("Connection test passed.")
	}

	c.io.Println()
	c.io.Println("=== Setup: send schedule ===")
	c.io.Println()

	schedule, err := c.readScheduleDraft()
	if err != nil {
		return err
	}
	flow.SetSchedule(schedule)

	c.io.Println()
	c.io.Println("Saving configuration...")

	if err := flow.Save(ctx, c.sessions.Current().Username); err != nil {
		return err
	}

	c.io.Println("Configuration saved.")
	c.io.Println("Run 'mailerctl dashboard' to monitor the service.")
	return nil
}

func (c *Cli) readDatabaseDraft() (setup.DatabaseDraft, error) {
	var draft setup.DatabaseDraft
	var err error

	if draft.Server, err = c.io.ReadInput("Server: "); err != nil {
		return draft, fmt.Errorf("failed to read server: %w", err)
	}
	if draft.Port, err = c.readInt("Port [1433]: ", 1433); err != nil {
		return draft, err
	}
	if draft.User, err = c.io.ReadInput("User: "); err != nil {
		return draft, fmt.Errorf("failed to read user: %w", err)
	}
	if draft.Password, err = c.io.ReadPassword("Password: "); err != nil {
		return draft, fmt.Errorf("failed to read password: %w", err)
	}
	if draft.Database, err = c.io.ReadInput("Database: "); err != nil {
		return draft, fmt.Errorf("failed to read database: %w", err)
	}

	return draft, nil
}

func (c *Cli) readScheduleDraft() (setup.ScheduleDraft, error) {
	var draft setup.ScheduleDraft
	var err error

	if draft.StartTime, err = c.io.ReadInput("Window start (HH:MM) [06:00]: "); err != nil {
		return draft, fmt.Errorf("failed to read start time: %w", err)
	}
	if draft.StartTime == "" {
		draft.StartTime = "06:00"
	}
	if draft.EndTime, err = c.io.ReadInput("Window end (HH:MM) [22:00]: "); err != nil {
		return draft, fmt.Errorf("failed to read end time: %w", err)
	}
	if draft.EndTime == "" {
		draft.EndTime = "22:00"
	}
	if draft.Interval, err = c.readInt("Send interval [5]: ", 5); err != nil {
		return draft, err
	}
	if draft.IntervalUnit, err = c.io.ReadInput("Interval unit (seconds/minutes/hours) [minutes]: "); err != nil {
		return draft, fmt.Errorf("failed to read interval unit: %w", err)
	}
	if draft.IntervalUnit == "" {
		draft.IntervalUnit = "minutes"
	}
	if draft.RequestTimeout, err = c.readInt("DB request timeout, seconds [30]: ", 30); err != nil {
		return draft, err
	}
	if draft.ConnectionTimeout, err = c.readInt("DB connection timeout, seconds [15]: ", 15); err != nil {
		return draft, err
	}

	return draft, nil
}

// readInt prompts for an integer; an empty answer takes the default.
func (c *Cli) readInt(prompt string, def int) (int, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	if input == "" {
		return def, nil
	}
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	return value, nil
}

// Package setup implements the one-time configuration flow: the
// database connection form, the send-schedule form, and the
// test-before-save gate between them.
package setup

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/validation"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// ErrConnectionNotTested gates Save: the database parameters must pass a
// connection test in the current flow before anything is written.
var ErrConnectionNotTested = errors.New("database connection has not been tested")

// DatabaseDraft holds the database form fields.
type DatabaseDraft struct {
	Server   string
	User     string
	Password string
	Database string
	Port     int
}

// ScheduleDraft holds the schedule form fields. Times are the HH:MM
// display form; they are compacted to HHMM only on save.
type ScheduleDraft struct {
	StartTime         string
	EndTime           string
	IntervalUnit      string
	Interval          int
	RequestTimeout    int
	ConnectionTimeout int
}

// Flow is one editing session of the setup screens. Drafts are
// transient: a new flow starts clean.
type Flow struct {
	apiClient *clientapi.Client
	db        DatabaseDraft
	schedule  ScheduleDraft
	tested    bool
}

// NewFlow starts a fresh editing session.
func NewFlow(apiClient *clientapi.Client) *Flow {
	return &Flow{apiClient: apiClient}
}

// SetDatabase replaces the database draft. A previously earned tested
// flag is kept: the test result stays valid until the next test or a new
// flow, matching the shipped behavior of the configuration screen.
func (f *Flow) SetDatabase(draft DatabaseDraft) {
	f.db = draft
}

// SetSchedule replaces the schedule draft.
func (f *Flow) SetSchedule(draft ScheduleDraft) {
	f.schedule = draft
}

// Database returns the current database draft.
func (f *Flow) Database() DatabaseDraft {
	return f.db
}

// Tested reports whether the current draft has passed a connection test.
func (f *Flow) Tested() bool {
	return f.tested
}

// TestConnection sends the database draft to the backend probe. Success
// arms the save gate; any failure disarms it. The returned message is
// the backend's text when it supplied one.
func (f *Flow) TestConnection(ctx context.Context) (string, error) {
	if err := validation.ValidateDBFields(f.db.Server, f.db.Port, f.db.User, f.db.Password, f.db.Database); err != nil {
		f.tested = false
		return "", err
	}

	resp, err := f.apiClient.TestConnection(ctx, f.dbConfig())
	if err != nil {
		f.tested = false
		return "", err
	}
	if !resp.Success {
		f.tested = false
		if msg := resp.Text(); msg != "" {
			return "", fmt.Errorf("connection test failed: %s", msg)
		}
		return "", fmt.Errorf("connection test failed")
	}

	f.tested = true
	return resp.Text(), nil
}

// Save writes the configuration: the database write first, the schedule
// write only after it succeeded. The schedule payload reuses the
// operator username and the database password; separate dispatch-account
// credentials are not collected. operator is the logged-in username.
func (f *Flow) Save(ctx context.Context, operator string) error {
	if !f.tested {
		return ErrConnectionNotTested
	}
	if err := validation.ValidateScheduleFields(
		f.schedule.StartTime, f.schedule.EndTime,
		f.schedule.Interval, f.schedule.IntervalUnit,
		f.schedule.RequestTimeout, f.schedule.ConnectionTimeout,
	); err != nil {
		return err
	}

	startTime, err := validation.CompactClockTime(f.schedule.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	endTime, err := validation.CompactClockTime(f.schedule.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	dbResp, err := f.apiClient.SaveDBConfig(ctx, f.dbConfig())
	if err != nil {
		return fmt.Errorf("failed to save database configuration: %w", err)
	}
	if !dbResp.OK() {
		if msg := dbResp.Text(); msg != "" {
			return fmt.Errorf("failed to save database configuration: %s", msg)
		}
		return fmt.Errorf("failed to save database configuration")
	}

	schedResp, err := f.apiClient.SaveEmailConfig(ctx, pkgapi.ScheduleConfig{
		StartTime:           startTime,
		EndTime:             endTime,
		Interval:            f.schedule.Interval,
		IntervalUnit:        f.schedule.IntervalUnit,
		DBRequestTimeout:    f.schedule.RequestTimeout,
		DBConnectionTimeout: f.schedule.ConnectionTimeout,
		Username:            operator,
		Password:            f.db.Password,
	})
	if err != nil {
		return fmt.Errorf("failed to save schedule configuration: %w", err)
	}
	if !schedResp.OK() {
		if msg := schedResp.Text(); msg != "" {
			return fmt.Errorf("failed to save schedule configuration: %s", msg)
		}
		return fmt.Errorf("failed to save schedule configuration")
	}

	return nil
}

func (f *Flow) dbConfig() pkgapi.DBConfig {
	return pkgapi.DBConfig{
		Server:   f.db.Server,
		Port:     f.db.Port,
		User:     f.db.User,
		Password: f.db.Password,
		Database: f.db.Database,
	}
}

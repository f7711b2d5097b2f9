package console

import (
	"context"

	"github.com/iudanet/mailerctl/internal/validation"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

func (c *Cli) runConfig(ctx context.Context) error {
	cfg, err := c.view.CurrentConfig(ctx)
	if err != nil {
		return err
	}

	data := struct {
		Database      pkgapi.DBConfig
		Email         pkgapi.ScheduleConfig
		ScheduleStart string
		ScheduleEnd   string
	}{
		Database:      cfg.Database,
		Email:         cfg.Email,
		ScheduleStart: validation.DisplayClockTime(cfg.Email.StartTime),
		ScheduleEnd:   validation.DisplayClockTime(cfg.Email.EndTime),
	}

	return configTemplate.Execute(c.io, data)
}

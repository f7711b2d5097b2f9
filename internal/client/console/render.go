package console

import (
	"github.com/iudanet/mailerctl/internal/client/dashboard"
	"github.com/iudanet/mailerctl/internal/validation"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

type certRow struct {
	Cert     pkgapi.Certificate
	Source   string
	PinState string
}

type dashboardData struct {
	FetchedAt     string
	Service       pkgapi.ServiceStatus
	Database      pkgapi.DatabaseStatus
	Schedule      pkgapi.ScheduleStatus
	ScheduleStart string
	ScheduleEnd   string
	CertStatus    pkgapi.CertificateStatusResponse
	Rows          []certRow
}

// pinStateText renders the PIN state of one certificate. ok is false when
// no PIN status entry is known for it.
func pinStateText(entry pkgapi.PinStatusEntry, ok bool) string {
	switch {
	case !ok:
		return "unknown"
	case !entry.HasPin:
		return "not set"
	case entry.Verified:
		return "set (verified)"
	default:
		return "set (not verified)"
	}
}

func (c *Cli) renderDashboard(snap *dashboard.Snapshot) error {
	data := dashboardData{
		FetchedAt:     snap.FetchedAt.Format("2006-01-02 15:04:05"),
		Service:       snap.Dashboard.Service,
		Database:      snap.Dashboard.Database,
		Schedule:      snap.Dashboard.Schedule,
		ScheduleStart: validation.DisplayClockTime(snap.Dashboard.Schedule.StartTime),
		ScheduleEnd:   validation.DisplayClockTime(snap.Dashboard.Schedule.EndTime),
		CertStatus:    snap.CertStatus,
	}

	for _, cert := range snap.Certificates.HardwareCertificates {
		entry, ok := snap.PinFor(cert.Thumbprint)
		data.Rows = append(data.Rows, certRow{
			Cert:     cert,
			Source:   "hardware",
			PinState: pinStateText(entry, ok),
		})
	}

	return dashboardTemplate.Execute(c.io, data)
}

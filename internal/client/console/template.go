package console

import "text/template"

var usageTemplate = template.Must(template.New("usage").Parse(`
mailerctl - dispatch service operator console

Usage:
  mailerctl [OPTIONS] COMMAND

Options:
  --version            Show version information
  --server URL         Dispatch service URL (default: http://localhost:8080)
  --db PATH            Path to the local session database (default: mailerctl.db)
  --history-db PATH    Path to the local poll history database (default: mailerctl-history.db)

Commands:
  login                Log in to the dispatch service
  logout               Log out and clear the saved session
  status               Show session and last known service state
  setup                Configure database connection and send schedule
  dashboard            Live service dashboard (refreshes every 10s)
  service start|stop   Start or stop the dispatch service
  certs                List signing certificates and hardware token state
  pin <thumbprint>     Set or change the PIN for a certificate
  config               Show the saved configuration
  history              Show recent dashboard refreshes

Examples:
  mailerctl login
  mailerctl dashboard
  mailerctl dashboard -interval 5s -count 3
  mailerctl service stop
  mailerctl pin ab12cd34
  mailerctl history -n 10
  mailerctl --server https://dispatch.example.com login
`))

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`
=== Dispatch Service Dashboard ===           {{.FetchedAt}}

Service:   {{.Service.Status}}
Database:  {{if .Database.Connected}}connected{{else}}disconnected{{end}}{{if .Database.Server}} ({{.Database.Server}}/{{.Database.Database}}){{end}}
Schedule:  {{if .Schedule.Active}}active{{else}}inactive{{end}} {{.ScheduleStart}} - {{.ScheduleEnd}}{{if .Schedule.Interval}}, every {{.Schedule.Interval}} {{.Schedule.IntervalUnit}}{{end}}

Emails:
  Processed: {{.Service.EmailsProcessed}}
  Sent:      {{.Service.EmailsSent}}
  Failed:    {{.Service.EmailsFailed}}
  Pending:   {{.Service.EmailsPending}}

Hardware token: {{if .CertStatus.TokenPresent}}present{{else}}not present{{end}}{{if .CertStatus.TokenLabel}} ({{.CertStatus.TokenLabel}}, slot {{.CertStatus.SlotID}}){{end}}
Signing certificate: {{if .CertStatus.CertificateFound}}found{{else}}not found{{end}}
{{- if .Rows}}

Certificates:
{{- range .Rows}}
  - {{.Cert.Subject}}
    Thumbprint: {{.Cert.Thumbprint}}
    PIN:        {{.PinState}}
{{- end}}
{{- end}}
`))

var certsTemplate = template.Must(template.New("certs").Parse(`
=== Certificates ===

{{- if eq (len .Rows) 0 }}

No certificates found.
{{- else }}

Found {{len .Rows}} certificate(s):
{{- range .Rows}}

- {{.Cert.Subject}}
   Thumbprint: {{.Cert.Thumbprint}}
   {{- if .Cert.SerialNumber}}
   Serial:     {{.Cert.SerialNumber}}
   {{- end}}
   {{- if .Cert.TokenLabel}}
   Token:      {{.Cert.TokenLabel}} (slot {{.Cert.SlotID}})
   {{- end}}
   Source:     {{.Source}}
   PIN:        {{.PinState}}
{{- end}}

Use 'mailerctl pin <thumbprint>' to set or change a PIN.
{{- end}}
`))

var configTemplate = template.Must(template.New("config").Parse(`
=== Saved Configuration ===

Database:
  Server:   {{.Database.Server}}
  Port:     {{.Database.Port}}
  User:     {{.Database.User}}
  Database: {{.Database.Database}}

Schedule:
  Window:             {{.ScheduleStart}} - {{.ScheduleEnd}}
  Interval:           {{.Email.Interval}} {{.Email.IntervalUnit}}
  Request timeout:    {{.Email.DBRequestTimeout}}s
  Connection timeout: {{.Email.DBConnectionTimeout}}s

Run 'mailerctl setup' to change the configuration.
`))

var historyTemplate = template.Must(template.New("history").Parse(`
=== Recent Refreshes ===

{{- if eq (len .) 0 }}

No refreshes recorded yet. Run 'mailerctl dashboard' first.
{{- else }}
{{range .}}
{{.RecordedAt.Format "2006-01-02 15:04:05"}}  {{printf "%-8s" .ServiceStatus}} processed={{.EmailsProcessed}} sent={{.EmailsSent}} failed={{.EmailsFailed}} pending={{.EmailsPending}}
{{- end}}
{{- end}}
`))

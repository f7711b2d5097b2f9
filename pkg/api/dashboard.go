package api

// DatabaseStatus reports backend database connectivity.
type DatabaseStatus struct {
	Connected bool   `json:"connected"`
	Server    string `json:"server,omitempty"`
	Database  string `json:"database,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ScheduleStatus reports the configured send window. Times come back in
// the compact HHMM form the backend stores.
type ScheduleStatus struct {
	Active       bool   `json:"active"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Interval     int    `json:"interval,omitempty"`
	IntervalUnit string `json:"interval_unit,omitempty"`
}

// ServiceStatus reports the dispatch service state and its email
// throughput counters.
type ServiceStatus struct {
	Status          string `json:"status"`
	EmailsProcessed int64  `json:"emails_processed"`
	EmailsSent      int64  `json:"emails_sent"`
	EmailsFailed    int64  `json:"emails_failed"`
	EmailsPending   int64  `json:"emails_pending"`
	LastRun         string `json:"last_run,omitempty"`
}

// DashboardResponse is the answer to GET /dashboard: a point-in-time
// aggregate, replaced wholesale on every poll.
type DashboardResponse struct {
	Database DatabaseStatus `json:"database"`
	Schedule ScheduleStatus `json:"schedule"`
	Service  ServiceStatus  `json:"service"`
}

// ServiceControlRequest is the payload of POST /service-control.
type ServiceControlRequest struct {
	Action string `json:"action"` // "start" or "stop"
	User   string `json:"user"`
}

// Service control actions accepted by the backend.
const (
	ServiceActionStart = "start"
	ServiceActionStop  = "stop"
)

package api

// DBConfig carries the database connection parameters. The same shape is
// used for POST /test-connection and POST /save-config.
type DBConfig struct {
	Server   string `json:"server"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// ScheduleConfig is the payload of POST /save-email-config. StartTime and
// EndTime are compact HHMM tokens ("0600"), not the HH:MM display form.
// Username and Password are the logged-in operator and the database
// password; the backend reuses them for the dispatch account.
type ScheduleConfig struct {
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	Interval            int    `json:"interval"`
	IntervalUnit        string `json:"interval_unit"`
	DBRequestTimeout    int    `json:"db_request_timeout"`
	DBConnectionTimeout int    `json:"db_connection_timeout"`
	Username            string `json:"username"`
	Password            string `json:"password"`
}

// StatusResponse is the generic success/message answer shared by the
// configuration write endpoints and /test-connection.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns the backend-supplied message, preferring Message.
func (s StatusResponse) Text() string {
	if s.Message != "" {
		return s.Message
	}
	return s.Error
}

// SaveResponse is the answer to the configuration write endpoints. The
// backend may omit the success flag entirely on the happy path, so a
// missing flag counts as success and only an explicit false is a
// failure.
type SaveResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK reports whether the write succeeded.
func (s SaveResponse) OK() bool {
	return s.Success == nil || *s.Success
}

// Text returns the backend-supplied message, preferring Message.
func (s SaveResponse) Text() string {
	if s.Message != "" {
		return s.Message
	}
	return s.Error
}

// CurrentConfig groups the persisted database and schedule configuration
// as returned by GET /get-current-config.
type CurrentConfig struct {
	Database DBConfig       `json:"database"`
	Email    ScheduleConfig `json:"email"`
}

// CurrentConfigResponse is the answer to GET /get-current-config.
type CurrentConfigResponse struct {
	Success bool          `json:"success"`
	Config  CurrentConfig `json:"config"`
	Message string        `json:"message,omitempty"`
}

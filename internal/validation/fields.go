// Package validation holds the client-side input checks. The console
// only enforces what the original forms enforced: required fields plus
// the few values that have an obvious shape (port, clock time).
package validation

import "fmt"

// Interval units accepted by the schedule form.
var intervalUnits = map[string]bool{
	"seconds": true,
	"minutes": true,
	"hours":   true,
}

// ValidateCredentials checks the login form's required constraint: both
// fields non-empty, no format validation.
func ValidateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateDBFields checks the five database connection fields.
func ValidateDBFields(server string, port int, user, password, database string) error {
	if server == "" {
		return fmt.Errorf("server cannot be empty")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if user == "" {
		return fmt.Errorf("user cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if database == "" {
		return fmt.Errorf("database cannot be empty")
	}
	return nil
}

// ValidateScheduleFields checks the send-schedule form. Times are the
// HH:MM display form.
func ValidateScheduleFields(startTime, endTime string, interval int, intervalUnit string, requestTimeout, connectionTimeout int) error {
	if _, err := ParseClockTime(startTime); err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	if _, err := ParseClockTime(endTime); err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if interval < 1 {
		return fmt.Errorf("interval must be positive")
	}
	if !intervalUnits[intervalUnit] {
		return fmt.Errorf("interval unit must be one of seconds, minutes, hours")
	}
	if requestTimeout < 1 {
		return fmt.Errorf("request timeout must be positive")
	}
	if connectionTimeout < 1 {
		return fmt.Errorf("connection timeout must be positive")
	}
	return nil
}

// ValidatePin checks a PIN entry. The hardware token defines the real
// rules; the client only refuses an empty value.
func ValidatePin(pin string) error {
	if pin == "" {
		return fmt.Errorf("pin cannot be empty")
	}
	return nil
}

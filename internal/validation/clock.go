package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock moment within a day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses the HH:MM display form ("06:00").
func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ClockTime{}, fmt.Errorf("time must be in HH:MM form, got %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", value)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Compact renders the wire form the backend stores ("0600").
func (c ClockTime) Compact() string {
	return fmt.Sprintf("%02d%02d", c.Hour, c.Minute)
}

// Display renders the HH:MM form shown to the operator ("06:00").
func (c ClockTime) Display() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// CompactClockTime converts the HH:MM display form to the compact HHMM
// token sent to the backend.
func CompactClockTime(value string) (string, error) {
	ct, err := ParseClockTime(value)
	if err != nil {
		return "", err
	}
	return ct.Compact(), nil
}

// DisplayClockTime converts a compact HHMM token back to the HH:MM
// display form. Values that are not four digits are returned unchanged;
// the backend owns the format and the console only prettifies it.
func DisplayClockTime(value string) string {
	if len(value) != 4 {
		return value
	}
	ct, err := ParseClockTime(value[:2] + ":" + value[2:])
	if err != nil {
		return value
	}
	return ct.Display()
}

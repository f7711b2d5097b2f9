package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials("operator", "x"))
	assert.Error(t, ValidateCredentials("", "x"))
	assert.Error(t, ValidateCredentials("operator", ""))
}

func TestValidateDBFields(t *testing.T) {
	require.NoError(t, ValidateDBFields("db1", 1433, "sa", "x", "mail"))

	tests := []struct {
		name     string
		server   string
		port     int
		user     string
		password string
		database string
	}{
		{name: "empty server", port: 1433, user: "sa", password: "x", database: "mail"},
		{name: "zero port", server: "db1", user: "sa", password: "x", database: "mail"},
		{name: "port too large", server: "db1", port: 70000, user: "sa", password: "x", database: "mail"},
		{name: "empty user", server: "db1", port: 1433, password: "x", database: "mail"},
		{name: "empty password", server: "db1", port: 1433, user: "sa", database: "mail"},
		{name: "empty database", server: "db1", port: 1433, user: "sa", password: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateDBFields(tt.server, tt.port, tt.user, tt.password, tt.database))
		})
	}
}

func TestValidateScheduleFields(t *testing.T) {
	require.NoError(t, ValidateScheduleFields("06:00", "22:00", 5, "minutes", 30, 15))

	assert.Error(t, ValidateScheduleFields("6:00", "22:00", 5, "minutes", 30, 15))
	assert.Error(t, ValidateScheduleFields("06:00", "25:00", 5, "minutes", 30, 15))
	assert.Error(t, ValidateScheduleFields("06:00", "22:00", 0, "minutes", 30, 15))
	assert.Error(t, ValidateScheduleFields("06:00", "22:00", 5, "days", 30, 15))
	assert.Error(t, ValidateScheduleFields("06:00", "22:00", 5, "minutes", 0, 15))
	assert.Error(t, ValidateScheduleFields("06:00", "22:00", 5, "minutes", 30, 0))
}

func TestValidatePin(t *testing.T) {
	assert.NoError(t, ValidatePin("1234"))
	assert.Error(t, ValidatePin(""))
}

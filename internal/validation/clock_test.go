package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "06:00", want: "0600"},
		{name: "evening", input: "22:00", want: "2200"},
		{name: "midnight", input: "00:00", want: "0000"},
		{name: "last minute", input: "23:59", want: "2359"},
		{name: "missing colon", input: "0600", wantErr: true},
		{name: "single digit hour", input: "6:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompactClockTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayClockTime(t *testing.T) {
	assert.Equal(t, "06:00", DisplayClockTime("0600"))
	assert.Equal(t, "22:30", DisplayClockTime("2230"))
	// Unknown formats pass through untouched.
	assert.Equal(t, "6:00", DisplayClockTime("6:00"))
	assert.Equal(t, "", DisplayClockTime(""))
	assert.Equal(t, "9999", DisplayClockTime("9999"))
}

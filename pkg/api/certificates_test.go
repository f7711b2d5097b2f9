package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizePinResults verifies that both response shapes of the PIN
// store endpoint collapse into the same per-entry representation.
func TestNormalizePinResults(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantText    string
	}{
		{
			name:        "bare object success",
			body:        `{"success":true}`,
			wantSuccess: true,
			wantText:    "",
		},
		{
			name:        "array success",
			body:        `[{"success":true}]`,
			wantSuccess: true,
			wantText:    "",
		},
		{
			name:        "bare object failure",
			body:        `{"success":false,"error":"bad pin"}`,
			wantSuccess: false,
			wantText:    "bad pin",
		},
		{
			name:        "array failure",
			body:        `[{"success":false,"error":"bad pin"}]`,
			wantSuccess: false,
			wantText:    "bad pin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NormalizePinResults(json.RawMessage(tt.body))
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantSuccess, results[0].Success)
			assert.Equal(t, tt.wantText, results[0].Text())
		})
	}
}

func TestNormalizePinResults_MultiEntry(t *testing.T) {
	body := `[{"success":true},{"success":false,"message":"locked"}]`
	results, err := NormalizePinResults(json.RawMessage(body))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, "locked", results[1].Text())
}

func TestNormalizePinResults_Garbage(t *testing.T) {
	_, err := NormalizePinResults(json.RawMessage(`"nope`))
	require.Error(t, err)
}

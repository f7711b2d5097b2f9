package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()

	log, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, log.Close())
	})

	return log
}

func TestLog_RecordAndRecent(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for i := 0; i < 3; i++ {
		require.NoError(t, log.Record(ctx, Entry{
			RecordedAt:      base.Add(time.Duration(i) * time.Minute),
			ServiceStatus:   "running",
			EmailsProcessed: int64(100 + i),
			EmailsSent:      int64(90 + i),
			EmailsFailed:    1,
			EmailsPending:   int64(9 - i),
		}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, int64(102), entries[0].EmailsProcessed)
	assert.Equal(t, int64(101), entries[1].EmailsProcessed)
	assert.Equal(t, "running", entries[0].ServiceStatus)
	assert.Equal(t, base.Add(2*time.Minute).Unix(), entries[0].RecordedAt.Unix())
}

func TestLog_RecentEmpty(t *testing.T) {
	log := newTestLog(t)

	entries, err := log.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

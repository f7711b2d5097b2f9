package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/client/storage"
)

// fakeDispatch is a canned dispatch backend for dashboard tests.
type fakeDispatch struct {
	mu          sync.Mutex
	hits        map[string]int
	failPaths   map[string]bool
	pinQuery    []string
	status      string
	pinVerified bool
}

func newFakeDispatch() *fakeDispatch {
	return &fakeDispatch{
		hits:        make(map[string]int),
		failPaths:   make(map[string]bool),
		status:      "running",
		pinVerified: true,
	}
}

func (f *fakeDispatch) setFail(path string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPaths[path] = fail
}

func (f *fakeDispatch) setPinVerified(verified bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinVerified = verified
}

func (f *fakeDispatch) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeDispatch) totalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *fakeDispatch) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		fail := f.failPaths[r.URL.Path]
		status := f.status
		pinVerified := f.pinVerified
		if r.URL.Path == "/api/certificate-pin-status" {
			f.pinQuery = append(f.pinQuery, r.URL.Query().Get("refresh"))
		}
		f.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"upstream down"}`))
			return
		}

		switch r.URL.Path {
		case "/api/dashboard":
			_, _ = w.Write([]byte(`{
				"database": {"connected": true, "server": "db1", "database": "mail"},
				"schedule": {"active": true, "start_time": "0600", "end_time": "2200"},
				"service": {"status": "` + status + `", "emails_processed": 120, "emails_sent": 110, "emails_failed": 4, "emails_pending": 6}
			}`))
		case "/api/certificate-status":
			_, _ = w.Write([]byte(`{"success":true,"available":true,"token_present":true,"certificate_found":true,"token_label":"hsm-1","slot_id":0}`))
		case "/api/certificates":
			_, _ = w.Write([]byte(`{
				"success": true,
				"total_certificates": 2,
				"system_certificates": [{"thumbprint":"sys1","subject":"CN=sys"}],
				"hardware_certificates": [{"thumbprint":"ab12","subject":"CN=dispatch","serial_number":"01","token_label":"hsm-1","slot_id":0,"has_private_key":true}]
			}`))
		case "/api/certificate-pin-status":
			_, _ = w.Write([]byte(`{
				"success": true,
				"total_certificates": 1,
				"certificates": [{"certificate_id":"ab12","token_label":"hsm-1","slot_id":0,"has_pin":true,"verified":` + strconv.FormatBool(pinVerified) + `}]
			}`))
		case "/api/certificate-pin":
			_, _ = w.Write([]byte(`[{"success":true}]`))
		case "/api/service-control":
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		case "/api/get-current-config":
			_, _ = w.Write([]byte(`{"success":true,"config":{"database":{"server":"db1","port":1433,"user":"sa","database":"mail"},"email":{"start_time":"0600","end_time":"2200","interval":5,"interval_unit":"minutes"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestView(t *testing.T, backend *fakeDispatch, cache storage.CacheStorage) *View {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	return NewView(clientapi.NewClient(server.URL, nil), cache)
}

// memCache is an in-memory CacheStorage for tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) SaveCache(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), value...)
	return nil
}

func (m *memCache) GetCache(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, storage.ErrCacheMiss
	}
	return append([]byte(nil), value...), nil
}

// TestView_FetchBatch verifies the four-way read and the snapshot join
// between PIN status and the certificate inventory.
func TestView_FetchBatch(t *testing.T) {
	backend := newFakeDispatch()
	view := newTestView(t, backend, nil)

	snap, err := view.FetchBatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, 1, backend.hitCount("/api/dashboard"))
	assert.Equal(t, 1, backend.hitCount("/api/certificate-status"))
	assert.Equal(t, 1, backend.hitCount("/api/certificates"))
	assert.Equal(t, 1, backend.hitCount("/api/certificate-pin-status"))

	assert.Equal(t, "running", snap.Dashboard.Service.Status)
	assert.Equal(t, int64(110), snap.Dashboard.Service.EmailsSent)
	assert.True(t, snap.CertStatus.TokenPresent)

	cert, ok := snap.HardwareCertificate("ab12")
	require.True(t, ok)
	assert.Equal(t, "CN=dispatch", cert.Subject)

	pin, ok := snap.PinFor("ab12")
	require.True(t, ok)
	assert.True(t, pin.HasPin)

	// Unknown thumbprint: no status yet, not an error.
	_, ok = snap.PinFor("missing")
	assert.False(t, ok)

	// The poll batch uses the cached PIN read, never the forced one.
	backend.mu.Lock()
	assert.Equal(t, []string{"false"}, backend.pinQuery)
	backend.mu.Unlock()
}

// TestView_BatchAllOrNothing verifies that one failing read fails the
// whole cycle and keeps the previous snapshot visible.
func TestView_BatchAllOrNothing(t *testing.T) {
	backend := newFakeDispatch()
	view := newTestView(t, backend, nil)

	first, err := view.FetchBatch(context.Background())
	require.NoError(t, err)

	backend.setFail("/api/certificates", true)

	_, err = view.FetchBatch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard batch failed")

	// Stale data from the last successful cycle remains.
	assert.Same(t, first, view.Last())
}

func TestView_FirstCycleFailure(t *testing.T) {
	backend := newFakeDispatch()
	backend.setFail("/api/dashboard", true)
	view := newTestView(t, backend, nil)

	_, err := view.FetchBatch(context.Background())
	require.Error(t, err)
	assert.Nil(t, view.Last(), "nothing to show before the first successful cycle")
}

// TestView_CacheRoundTrip verifies that a successful cycle is mirrored
// into the cache and that a later run can seed from it.
func TestView_CacheRoundTrip(t *testing.T) {
	backend := newFakeDispatch()
	cache := newMemCache()
	view := newTestView(t, backend, cache)

	_, err := view.FetchBatch(context.Background())
	require.NoError(t, err)

	restarted := NewView(nil, cache)
	require.NoError(t, restarted.LoadCached(context.Background()))

	last := restarted.Last()
	require.NotNil(t, last)
	assert.Equal(t, "running", last.Dashboard.Service.Status)
}

func TestView_LoadCached_Miss(t *testing.T) {
	view := NewView(nil, newMemCache())
	require.NoError(t, view.LoadCached(context.Background()))
	assert.Nil(t, view.Last())
}

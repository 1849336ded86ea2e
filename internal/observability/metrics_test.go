package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/share/validate", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/api/share/validate", "POST", 200, 30*time.Millisecond)
	m.RecordError("/api/admin/login", "POST", "UNAUTHORIZED")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/api/share/validate|POST|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMsec["/api/share/validate|POST|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/admin/login|POST|UNAUTHORIZED"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollectorRecords(t *testing.T) {
	m := NewCollector()
	m.RecordRequest("/api/v1/calculate", "POST", "200", 12*time.Millisecond)
	m.RecordCalculation("http", "ok")
	m.RecordCalculation("http", "INVALID_INPUT")
	m.LiveSessionOpened()
	m.LiveSessionOpened()
	m.LiveSessionClosed()

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]int{}
	for _, f := range families {
		got[f.GetName()] = len(f.GetMetric())
	}
	if got["calculations_total"] != 2 || got["http_requests_total"] != 1 || got["live_sessions"] != 1 {
		t.Fatalf("gathered %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "live_sessions 1") {
		t.Fatalf("live_sessions gauge missing:\n%s", body)
	}
}

func TestNilCollector(t *testing.T) {
	var m *Collector
	m.RecordRequest("/", "GET", "200", time.Millisecond)
	m.RecordCalculation("http", "ok")
	m.LiveSessionOpened()
	m.LiveSessionClosed()
}

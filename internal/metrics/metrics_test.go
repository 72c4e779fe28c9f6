package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_UpGauge(t *testing.T) {
	m := New()
	if got := testutil.ToFloat64(m.up); got != 1 {
		t.Errorf("expected up=1, got %v", got)
	}
}

func TestObserveLoad(t *testing.T) {
	m := New()
	m.ObserveLoad(load.Result{Elapsed: 3 * time.Millisecond})
	m.ObserveLoad(load.Result{Elapsed: 5 * time.Millisecond})

	if got := testutil.ToFloat64(m.loadRuns); got != 2 {
		t.Errorf("expected 2 load runs, got %v", got)
	}
	if got := testutil.CollectAndCount(m.loadDuration); got != 1 {
		t.Errorf("expected a single histogram series, got %d", got)
	}
}

func TestObserveLoad_ViaGeneratorHook(t *testing.T) {
	m := New()
	gen := load.NewGenerator(load.WithOnComplete(m.ObserveLoad))
	gen.Run()

	if got := testutil.ToFloat64(m.loadRuns); got != 1 {
		t.Errorf("expected 1 load run, got %v", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/health", "GET", 200)
	m.ObserveRequest("/health", "GET", 200)
	m.ObserveRequest("/missing", "GET", 404)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/health", "GET", "200")); got != 2 {
		t.Errorf("expected 2 health requests, got %v", got)
	}
	if got := testutil.CollectAndCount(m.requests); got != 2 {
		t.Errorf("expected 2 label combinations, got %d", got)
	}
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveLoad(load.Result{Elapsed: time.Millisecond})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"sensorapi_up 1",
		"sensorapi_load_runs_total 1",
		"sensorapi_load_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("expected exposition to contain %q", name)
		}
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveLoad(load.Result{})

	if got := testutil.ToFloat64(b.loadRuns); got != 0 {
		t.Errorf("expected registries to be independent, got %v runs on b", got)
	}
}

package adapthttp

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ergzones/internal/app"
	"ergzones/internal/metrics"
	"ergzones/internal/zonecfg"
)

const hrDoc = `{
  "UT2": {"lower_bound": 0.60, "upper_bound": 0.70},
  "UT1": {"lower_bound": 0.70, "upper_bound": 0.80},
  "AT": {"lower_bound": 0.80, "upper_bound": 0.85},
  "TR": {"lower_bound": 0.85, "upper_bound": 0.95},
  "AN": {"lower_bound": 0.95, "upper_bound": null}
}`

const paceDoc = `{
  "UT2": {"lower_bound": 1.18, "upper_bound": 1.24},
  "UT1": {"lower_bound": 1.12, "upper_bound": 1.18},
  "AT": {"lower_bound": 1.06, "upper_bound": 1.12},
  "TR": {"lower_bound": 1.00, "upper_bound": 1.06},
  "AN": {"lower_bound": null, "upper_bound": 1.00}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	parse := func(doc string) *zonecfg.Config {
		cfg, err := zonecfg.Parse([]byte(doc), "test")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		return cfg
	}

	registry := zonecfg.NewRegistry()
	registry.Register(zonecfg.DefaultHRName, parse(hrDoc))
	registry.Register(zonecfg.DefaultPaceName, parse(paceDoc))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	zones := app.NewZoneService(registry, logger, m)
	return New(zones, m, logger, nil, []string{"*"}, t.TempDir()).WithoutRateLimit()
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHRZones(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := postJSON(t, h, "/calculate/hr-zones", `{"max_hr": 185}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		MaxHR int `json:"max_hr"`
		Zones []struct {
			ZoneName            string   `json:"zone_name"`
			LowerBound          *float64 `json:"lower_bound"`
			UpperBound          *float64 `json:"upper_bound"`
			LowerBoundFormatted string   `json:"lower_bound_formatted"`
			UpperBoundFormatted string   `json:"upper_bound_formatted"`
			RangeFormatted      string   `json:"range_formatted"`
		} `json:"zones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.MaxHR != 185 {
		t.Errorf("max_hr = %d, want 185", resp.MaxHR)
	}
	if len(resp.Zones) != 5 {
		t.Fatalf("got %d zones, want 5", len(resp.Zones))
	}
	ut2 := resp.Zones[0]
	if ut2.ZoneName != "UT2" {
		t.Errorf("first zone = %q, want UT2", ut2.ZoneName)
	}
	if ut2.RangeFormatted != "111bpm-129bpm" {
		t.Errorf("UT2 range = %q, want 111bpm-129bpm", ut2.RangeFormatted)
	}
	an := resp.Zones[4]
	if an.UpperBound != nil {
		t.Errorf("AN upper_bound = %v, want null", *an.UpperBound)
	}
	if an.RangeFormatted != ">175bpm" {
		t.Errorf("AN range = %q, want >175bpm", an.RangeFormatted)
	}
}

func TestHandlePaceZones(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := postJSON(t, h, "/calculate/pace-zones", `{"distance_meters": 2000, "time_seconds": 420}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		DistanceMeters int     `json:"distance_meters"`
		TimeSeconds    float64 `json:"time_seconds"`
		BenchmarkPace  string  `json:"benchmark_pace"`
		Zones          []struct {
			ZoneName       string `json:"zone_name"`
			RangeFormatted string `json:"range_formatted"`
		} `json:"zones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.BenchmarkPace != "1:45/500m" {
		t.Errorf("benchmark_pace = %q, want 1:45/500m", resp.BenchmarkPace)
	}
	if len(resp.Zones) != 5 {
		t.Fatalf("got %d zones, want 5", len(resp.Zones))
	}
	if resp.Zones[0].RangeFormatted != "2:03/500m-2:10/500m" {
		t.Errorf("UT2 range = %q, want 2:03/500m-2:10/500m", resp.Zones[0].RangeFormatted)
	}
	if resp.Zones[4].RangeFormatted != "<1:45/500m" {
		t.Errorf("AN range = %q, want <1:45/500m", resp.Zones[4].RangeFormatted)
	}
}

func TestHandleZonesErrors(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"hr out of range", "/calculate/hr-zones", `{"max_hr": 50}`, http.StatusBadRequest},
		{"hr missing body", "/calculate/hr-zones", ``, http.StatusBadRequest},
		{"hr unknown field", "/calculate/hr-zones", `{"max_hr": 185, "nope": 1}`, http.StatusBadRequest},
		{"hr unknown config", "/calculate/hr-zones", `{"max_hr": 185, "config": "nope"}`, http.StatusNotFound},
		{"pace distance too short", "/calculate/pace-zones", `{"distance_meters": 100, "time_seconds": 420}`, http.StatusBadRequest},
		{"pace time too long", "/calculate/pace-zones", `{"distance_meters": 2000, "time_seconds": 5000}`, http.StatusBadRequest},
		{"pace unknown config", "/calculate/pace-zones", `{"distance_meters": 2000, "time_seconds": 420, "config": "nope"}`, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h, tc.path, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.wantStatus, rec.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Code != tc.wantStatus {
				t.Errorf("error code = %d, want %d", resp.Code, tc.wantStatus)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", resp["status"])
	}
	if resp["service"] != serviceName {
		t.Errorf("service = %q, want %q", resp["service"], serviceName)
	}
	if resp["timestamp"] == "" {
		t.Error("timestamp is empty")
	}
}

func TestHandleAPIInfo(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q, want application/json", ct)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["version"] != serviceVersion {
		t.Errorf("version = %q, want %q", resp["version"], serviceVersion)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()

	// Generate one calculation so the counter families exist.
	postJSON(t, h, "/calculate/hr-zones", `{"max_hr": 185}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ergzones_zone_calculations_total") {
		t.Error("metrics output missing ergzones_zone_calculations_total")
	}
}

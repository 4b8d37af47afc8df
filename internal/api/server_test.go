package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cliquechain/pkg/series"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	runner := series.NewRunner(nil, nil, log.New(io.Discard))
	srv := httptest.NewServer(NewServer(runner, log.New(io.Discard)).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("status = %q, want ok", payload["status"])
	}
}

func TestConfigurations(t *testing.T) {
	srv := testServer(t)

	resp, body := get(t, srv.URL+"/v1/configurations/3")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	var payload configurationsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.N != 3 || payload.Count != 5 {
		t.Errorf("n=%d count=%d, want n=3 count=5", payload.N, payload.Count)
	}
	if len(payload.Configurations) != 5 {
		t.Fatalf("configurations = %d, want 5", len(payload.Configurations))
	}

	wantBreakdown := []series.SizeCount{{Size: 1, Count: 2}, {Size: 2, Count: 2}, {Size: 3, Count: 1}}
	if len(payload.Breakdown) != len(wantBreakdown) {
		t.Fatalf("breakdown = %+v, want %+v", payload.Breakdown, wantBreakdown)
	}
	for i := range wantBreakdown {
		if payload.Breakdown[i] != wantBreakdown[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, payload.Breakdown[i], wantBreakdown[i])
		}
	}

	for _, detail := range payload.Configurations {
		if detail.Brackets == "" {
			t.Errorf("configuration %v has empty bracket rendering", detail.Cliques)
		}
		if detail.EndingSize < 1 || detail.EndingSize > 3 {
			t.Errorf("ending size %d out of range", detail.EndingSize)
		}
	}
}

func TestConfigurationsBadInput(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		path     string
		status   int
		wantCode string
	}{
		{path: "/v1/configurations/abc", status: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{path: "/v1/configurations/0", status: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{path: "/v1/configurations/999", status: http.StatusBadRequest, wantCode: "INVALID_RANGE"},
	}

	for _, tt := range tests {
		resp, body := get(t, srv.URL+tt.path)
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}

		var payload errorBody
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("unmarshal error body: %v", err)
		}
		if payload.Error.Code != tt.wantCode {
			t.Errorf("GET %s code = %s, want %s", tt.path, payload.Error.Code, tt.wantCode)
		}
	}
}

func TestSeries(t *testing.T) {
	srv := testServer(t)

	resp, body := get(t, srv.URL+"/v1/series?max=5")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	var report series.Report
	if err := json.Unmarshal(body, &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.Max != 5 || len(report.Rows) != 5 {
		t.Errorf("report max=%d rows=%d, want 5/5", report.Max, len(report.Rows))
	}
	if !report.Verified() {
		t.Error("report not verified")
	}
	if report.Rows[4].Count != 41 {
		t.Errorf("Rows[4].Count = %d, want 41", report.Rows[4].Count)
	}
}

func TestSeriesMissingMax(t *testing.T) {
	srv := testServer(t)

	resp, _ := get(t, srv.URL+"/v1/series")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

//go:build integration

package tests

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/webui"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(webui.NewServer())
	t.Cleanup(srv.Close)
	return srv
}

func fixtureQuery() string {
	q := url.Values{}
	q.Set("solid_mass", "200")
	q.Set("silica_fraction", "30")
	q.Set("soda_fraction", "13.5")
	q.Set("target_modulus", "1.5")
	q.Set("target_alkali", "0.15")
	q.Set("target_solid_liquid", "0.6")
	return q.Encode()
}

// TestSolveAndExportFlow drives the whole stack the way the form does:
// health check, a solve round trip, then a CSV export of the same batch.
func TestSolveAndExportFlow(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/v1/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("health: expected 200, got %d", resp.StatusCode)
	}

	body := `{"solid_mass":"200","silica_fraction":"30","soda_fraction":"13.5",` +
		`"target_modulus":"1.5","target_alkali":"0.15","target_solid_liquid":"0.6"}`
	resp, err = http.Post(srv.URL+"/v1/solve", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		blob, _ := io.ReadAll(resp.Body)
		t.Fatalf("solve: expected 200, got %d body=%s", resp.StatusCode, blob)
	}
	var solved struct {
		OK  bool              `json:"ok"`
		Key map[string]string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&solved); err != nil {
		t.Fatalf("decode solve response: %v", err)
	}
	if !solved.OK || solved.Key["silicate_mass"] != "145.161" {
		t.Fatalf("unexpected solve response: %+v", solved)
	}

	resp, err = http.Get(srv.URL + "/v1/export?format=csv&" + fixtureQuery())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("export: expected 200, got %d", resp.StatusCode)
	}
	rows, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(rows) != 3 || len(rows[0]) != 18 {
		t.Fatalf("expected 3x18 exported table, got %dx%d", len(rows), len(rows[0]))
	}
}

// TestInfeasibleTargetsSurfaceReason checks the user-facing failure path end
// to end: the demo solid/liquid ratio of 1.5 must come back as a 422 naming
// the water mass.
func TestInfeasibleTargetsSurfaceReason(t *testing.T) {
	srv := startServer(t)

	body := `{"solid_mass":"200","silica_fraction":"30","soda_fraction":"13.5",` +
		`"target_modulus":"1.5","target_alkali":"0.15","target_solid_liquid":"1.5"}`
	resp, err := http.Post(srv.URL+"/v1/solve", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	var failed struct {
		Error struct {
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&failed); err != nil {
		t.Fatalf("decode failure response: %v", err)
	}
	if failed.Error.Reason != "water-mass" {
		t.Fatalf("expected water-mass reason, got %q", failed.Error.Reason)
	}
}

func TestReportEndpointServesBatchSheet(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/v1/report?" + fixtureQuery())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(blob), "Alkali Activator Batch Sheet") {
		t.Fatal("expected the batch sheet title in the report")
	}
}

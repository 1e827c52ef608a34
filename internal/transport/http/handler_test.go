package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graybook/internal/parity"
	"graybook/internal/services"
	"graybook/pkg/contracts/domain"
)

func testResult() *services.Result {
	faculty := []domain.ClassifiedFaculty{
		{
			Name:               "Teach, Amy",
			Track:              domain.TrackTeaching,
			Rank:               domain.RankAssociate,
			IsFullTimeHere:     true,
			TotalPresentSalary: 120000,
			Positions: []domain.Position{
				{Title: "TCH ASSOC PROF", EmplClass: "AA", PresentSalary: 120000, PresentFTE: 1},
			},
		},
		{
			Name:               "Tenure, Cora",
			Track:              domain.TrackTenureTrack,
			Rank:               domain.RankAssociate,
			IsFullTimeHere:     true,
			TotalPresentSalary: 150000,
			Positions: []domain.Position{
				{Title: "ASSOC PROF", EmplClass: "AA", PresentSalary: 150000, PresentFTE: 1},
			},
		},
	}

	return &services.Result{
		DeptID: "c42-d6",
		Snapshot: domain.DepartmentSnapshot{
			Department: "434 - Siebel School Comp & Data Sci",
			Summary:    domain.NewSummaryCounts(faculty),
			Faculty:    faculty,
		},
		Analysis: parity.NewAnalyzer(nil).Analyze(context.Background(), faculty),
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := NewHandler(testResult(), nil)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server
}

func TestGetHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestGetSnapshot(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snapshot domain.DepartmentSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
	assert.Equal(t, "434 - Siebel School Comp & Data Sci", snapshot.Department)
	assert.Len(t, snapshot.Faculty, 2)
	assert.Equal(t, 2, snapshot.Summary.TotalFaculty)
}

func TestGetParity(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/parity")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis parity.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
	require.Len(t, analysis.Parity, 1)
	assert.Equal(t, domain.RankAssociate, analysis.Parity[0].Rank)
}

func TestGetReportPage(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/nothing-here")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
}

func TestRequestIDPreserved(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-id-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "test-id-123", resp.Header.Get("X-Request-ID"))
}

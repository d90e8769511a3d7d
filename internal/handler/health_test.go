package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(context.Context) error {
	return s.err
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		checker        HealthChecker
		expectedStatus int
		expectedState  string
	}{
		{"ready", stubChecker{}, http.StatusOK, "ok"},
		{"not ready", stubChecker{err: errors.New("catalog has no items")}, http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleReadyz(tt.checker)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedState, resp.Status)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion()(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.NotEmpty(t, info.GoVersion)
}

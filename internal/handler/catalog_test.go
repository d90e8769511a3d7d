package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/mocks"
)

func TestHandlePutCatalog(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Accepted with unresolved references",
			body: `{"items":[]}`,
			setupMock: func(m *mocks.MockService) {
				m.On("ImportCatalog", mock.Anything, []byte(`{"items":[]}`)).Return(catalog.Report{
					Items: 3,
					Unknown: []catalog.UnknownReference{
						{Recipe: "Iron Ingot", ItemName: "Coper Ore", Suggestions: []string{"Copper Ore"}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var report catalog.Report
				require.NoError(t, json.Unmarshal([]byte(body), &report))
				require.Len(t, report.Unknown, 1)
				assert.Equal(t, []string{"Copper Ore"}, report.Unknown[0].Suggestions)
			},
		},
		{
			name: "Schema violation",
			body: `{"items":"nope"}`,
			setupMock: func(m *mocks.MockService) {
				m.On("ImportCatalog", mock.Anything, mock.Anything).
					Return(catalog.Report{}, fmt.Errorf("%w: schema validation failed", domain.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidInputError)
			},
		},
		{
			name: "Duplicate item",
			body: `{}`,
			setupMock: func(m *mocks.MockService) {
				m.On("ImportCatalog", mock.Anything, mock.Anything).
					Return(catalog.Report{}, fmt.Errorf("%w: 'Coal'", domain.ErrDuplicateItemName))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgDuplicateItemError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/catalog", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			HandlePutCatalog(mockSvc, 0)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandlePutCatalog_BodyLimit(t *testing.T) {
	const doc = `{"items":[{"name":"Coal","tier":1}]}`

	tests := []struct {
		name           string
		limit          int64
		body           string
		expectCall     bool
		expectedStatus int
	}{
		{"Default limit rejects oversized upload", 0, strings.Repeat(" ", DefaultMaxBodyBytes+1), false, http.StatusRequestEntityTooLarge},
		{"Configured limit below default", 16, doc, false, http.StatusRequestEntityTooLarge},
		{"Configured limit above default", DefaultMaxBodyBytes * 2, doc + strings.Repeat(" ", DefaultMaxBodyBytes), true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockService(t)
			if tt.expectCall {
				mockSvc.On("ImportCatalog", mock.Anything, mock.Anything).Return(catalog.Report{Items: 1}, nil)
			}

			req := httptest.NewRequest(http.MethodPut, "/catalog", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			HandlePutCatalog(mockSvc, tt.limit)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleGetCatalog(t *testing.T) {
	mockSvc := mocks.NewMockService(t)
	mockSvc.On("CatalogDocument").Return(&catalog.Document{
		Version: "2",
		Items:   []*domain.Item{{Name: "Sword", CraftValue: 72, HasCraftRecipe: true}},
	})
	mockSvc.On("CatalogReport").Return(catalog.Report{Items: 1})

	rec := httptest.NewRecorder()
	HandleGetCatalog(mockSvc)(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sword")

	rec = httptest.NewRecorder()
	HandleGetCatalogReport(mockSvc)(rec, httptest.NewRequest(http.MethodGet, "/catalog/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":1`)
}

func TestHandleRecalculate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Sync",
			body: `{"mode":"sync"}`,
			setupMock: func(m *mocks.MockService) {
				m.On("Recalculate", mock.Anything).Return(engine.RecalcResult{
					Updated: 2, RulesetVersion: 1, Duration: time.Millisecond,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, MsgRecalcCompleted)
			},
		},
		{
			name: "Async",
			body: `{"mode":"async"}`,
			setupMock: func(m *mocks.MockService) {
				m.On("ScheduleRecalculation").Return()
			},
			expectedStatus: http.StatusAccepted,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, MsgRecalcScheduled)
			},
		},
		{
			name: "Flush pending",
			body: `{"mode":"flush"}`,
			setupMock: func(m *mocks.MockService) {
				m.On("FlushRecalculation").Return(true)
			},
			expectedStatus: http.StatusAccepted,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, MsgRecalcFlushed)
			},
		},
		{
			name: "Flush with nothing pending",
			body: `{"mode":"flush"}`,
			setupMock: func(m *mocks.MockService) {
				m.On("FlushRecalculation").Return(false)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, MsgRecalcNothing)
			},
		},
		{
			name:           "Unknown mode",
			body:           `{"mode":"later"}`,
			setupMock:      func(m *mocks.MockService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "Must be one of: sync async flush", resp.Fields["mode"])
			},
		},
		{
			name:           "Malformed body",
			body:           `{`,
			setupMock:      func(m *mocks.MockService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/recalculate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			HandleRecalculate(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandleGetStats(t *testing.T) {
	mockSvc := mocks.NewMockService(t)
	mockSvc.On("Stats").Return(engine.Stats{RulesetVersion: 3, Items: 5})

	rec := httptest.NewRecorder()
	HandleGetStats(mockSvc)(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ruleset_version":3`)
}

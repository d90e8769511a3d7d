package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/handler"
)

const testCatalog = `{
  "version": "test",
  "items": [
    {"name": "Iron Ore", "tier": 1, "categories": ["Ore"]},
    {"name": "Coal", "tier": 1, "categories": ["Fuel"]},
    {"name": "Iron Ingot", "tier": 2}
  ],
  "recipes": [
    {
      "result_item": "Iron Ingot",
      "variants": [{
        "ingredients": [{"item": "Iron Ore", "quantity": 2}],
        "fuel": [{"item": "Coal", "quantity": 1}]
      }]
    }
  ]
}`

func newTestServer(t *testing.T, opts Options) (*Server, *engine.Engine) {
	t.Helper()

	rs := domain.NewRuleset("test")
	rs.Weights = domain.Weights{Category: 1}
	rs.CategoryMultipliers = map[string]float64{"Ore": 0.1, "Fuel": 0.02}

	e, err := engine.New(rs, nil, nil, engine.Options{DebounceWindow: time.Hour})
	require.NoError(t, err)
	e.Start()
	t.Cleanup(e.Stop)

	_, err = e.ImportCatalog(t.Context(), []byte(testCatalog))
	require.NoError(t, err)

	srv := NewServer(opts, e, e)
	t.Cleanup(srv.cancel)
	return srv, e
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t, Options{})

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"liveness", http.MethodGet, "/healthz", "", http.StatusOK, `"ok"`},
		{"readiness", http.MethodGet, "/readyz", "", http.StatusOK, `"ok"`},
		{"version", http.MethodGet, "/version", "", http.StatusOK, `"go_version"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "forgeworks_"},
		{"price", http.MethodGet, "/api/v1/items/Iron%20Ore/price", "", http.StatusOK, `"price":10`},
		{"price unknown", http.MethodGet, "/api/v1/items/Iron%20Ode/price", "", http.StatusNotFound, `"Iron Ore"`},
		{"cost", http.MethodGet, "/api/v1/recipes/Iron%20Ingot/cost", "", http.StatusOK, `"crafting_cost":20`},
		{"cost without recipe", http.MethodGet, "/api/v1/recipes/Coal/cost", "", http.StatusNotFound, handler.ErrMsgRecipeNotFoundError},
		{"time", http.MethodGet, "/api/v1/recipes/Iron%20Ingot/time", "", http.StatusOK, `"seconds"`},
		{"tree", http.MethodGet, "/api/v1/tree/Iron%20Ingot?quantity=2", "", http.StatusOK, `"quantity":2`},
		{"ruleset", http.MethodGet, "/api/v1/ruleset", "", http.StatusOK, `"weights_sum_to_one":true`},
		{"catalog export", http.MethodGet, "/api/v1/catalog", "", http.StatusOK, `"Iron Ingot"`},
		{"catalog report", http.MethodGet, "/api/v1/catalog/report", "", http.StatusOK, `"items":3`},
		{"suggest", http.MethodGet, "/api/v1/catalog/suggest?name=Coa", "", http.StatusOK, `"Coal"`},
		{"recalculate", http.MethodPost, "/api/v1/recalculate", `{"mode":"sync"}`, http.StatusOK, `"updated":1`},
		{"stats", http.MethodGet, "/api/v1/stats", "", http.StatusOK, `"ruleset_version"`},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestServer_PutRulesetBumpsVersion(t *testing.T) {
	srv, e := newTestServer(t, Options{})
	before := e.Ruleset()

	body := `{"name":"tuned","base_value":200,` +
		`"weights":{"category":1,"tier":0,"mechanic":0,"modifier":0,"location":0,"frequency":0,"craft_complexity":0},` +
		`"category_multipliers":{"Ore":0.1}}`
	rec := do(t, srv, http.MethodPut, "/api/v1/ruleset", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.RulesetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, before.ID, resp.Ruleset.ID)
	assert.Equal(t, before.Version+1, resp.Ruleset.Version)

	rec = do(t, srv, http.MethodGet, "/api/v1/items/Iron%20Ore/price", "")
	assert.Contains(t, rec.Body.String(), `"price":20`)
}

func TestServer_PutCatalogReportsUnknownIngredients(t *testing.T) {
	srv, _ := newTestServer(t, Options{})

	body := strings.Replace(testCatalog, `"item": "Iron Ore"`, `"item": "Iron Ote"`, 1)
	rec := do(t, srv, http.MethodPut, "/api/v1/catalog", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var report catalog.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Unknown, 1)
	assert.Equal(t, "Iron Ote", report.Unknown[0].ItemName)
	assert.Contains(t, report.Unknown[0].Suggestions, "Iron Ore")
}

func TestServer_Middleware(t *testing.T) {
	t.Run("security headers", func(t *testing.T) {
		srv, _ := newTestServer(t, Options{})
		rec := do(t, srv, http.MethodGet, "/healthz", "")

		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
		assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
	})

	t.Run("request id echoed", func(t *testing.T) {
		srv, _ := newTestServer(t, Options{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.Header.Set(HeaderRequestID, "trace-123")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, "trace-123", rec.Header().Get(HeaderRequestID))

		rec = do(t, srv, http.MethodGet, "/api/v1/stats", "")
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("body size limit", func(t *testing.T) {
		srv, _ := newTestServer(t, Options{MaxBodyBytes: 16})
		rec := do(t, srv, http.MethodPut, "/api/v1/catalog", testCatalog)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		srv, _ := newTestServer(t, Options{CORSOrigins: []string{"http://localhost:5173"}})

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/catalog", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSanitizeHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Accept", "application/json")

	sanitized := sanitizeHeaders(h)
	assert.Equal(t, []string{RedactedValue}, sanitized["Authorization"])
	assert.Equal(t, []string{"application/json"}, sanitized["Accept"])
	assert.Equal(t, "Bearer secret", h.Get("Authorization"), "input untouched")
}

func TestIsQuietPath(t *testing.T) {
	assert.True(t, isQuietPath("/healthz"))
	assert.True(t, isQuietPath("/metrics"))
	assert.False(t, isQuietPath("/api/v1/stats"))
}

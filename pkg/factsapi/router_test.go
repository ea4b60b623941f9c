package factsapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/factsapi"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
	ipadUA    = "Mozilla/5.0 (iPad; CPU OS 9_1 like Mac OS X) AppleWebKit/601.1 (KHTML, like Gecko) Version/9.0 Mobile/13B143 Safari/601.1"
	firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0"
)

func do(t *testing.T, h http.Handler, method, target, ua, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("User-Agent", ua)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetFacts(t *testing.T) {
	t.Parallel()

	h := factsapi.NewRouter()

	t.Run("caller agent", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/facts", ipadUA, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var f useragent.Facts
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
		assert.Equal(t, useragent.BrowserSafari, f.Browser)
		assert.Equal(t, useragent.PlatformIpad, f.Platform)
		assert.Equal(t, "9.1", f.PlatformVersion)
	})

	t.Run("agent from query", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/facts?ua="+strings.ReplaceAll(firefoxUA, " ", "%20"), chromeUA, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var f useragent.Facts
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
		assert.Equal(t, useragent.BrowserFirefox, f.Browser)
		assert.Equal(t, "89.0", f.Version)
	})
}

func TestPostFacts(t *testing.T) {
	t.Parallel()

	h := factsapi.NewRouter(factsapi.WithAssumptions(useragent.Assumptions{Windows: true}))

	t.Run("batch in order", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(factsapi.BatchRequest{UserAgents: []string{chromeUA, ipadUA, ""}})
		require.NoError(t, err)

		rec := do(t, h, http.MethodPost, "/facts", "", string(body))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp factsapi.BatchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Facts, 3)
		assert.Equal(t, useragent.BrowserChrome, resp.Facts[0].Browser)
		assert.Equal(t, useragent.BrowserSafari, resp.Facts[1].Browser)
		assert.True(t, resp.Facts[1].Flags.Windows, "assumption pins the platform flags")
		assert.False(t, resp.Facts[1].Flags.IPad)
		assert.Equal(t, useragent.BrowserUnknown, resp.Facts[2].Browser)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"invalid json", "{", http.StatusBadRequest},
		{"empty batch", `{"user_agents":[]}`, http.StatusBadRequest},
		{"body too large", `{"user_agents":["` + strings.Repeat("a", 2<<20) + `"]}`, http.StatusRequestEntityTooLarge},
		{"too large", `{"user_agents":[` + strings.Repeat(`"a/1",`, factsapi.MaxBatchSize) + `"a/1"]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, http.MethodPost, "/facts", chromeUA, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp factsapi.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := factsapi.NewRouter(factsapi.WithRegistry(reg))

	rec := do(t, h, http.MethodGet, "/healthz", chromeUA, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	do(t, h, http.MethodGet, "/facts", chromeUA, "")

	rec = do(t, h, http.MethodGet, "/metrics", chromeUA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `useragent_requests_total{browser="chrome",device="desktop",platform="windows"} 3`, "healthz, facts and the metrics request itself")

	assert.Equal(t, http.StatusNotFound, do(t, factsapi.NewRouter(), http.MethodGet, "/metrics", chromeUA, "").Code)
}

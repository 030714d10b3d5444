package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/lms/apps/api/echo"
)

func TestServer_health(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/health")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp echoapi.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Status, "running")
}

func TestServer_clientErrors(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		ctype    string
		wantCode int
	}{
		{name: "malformed json", method: http.MethodPost, path: "/api/auth/register", body: `{"email":`, wantCode: http.StatusBadRequest},
		{name: "not json", method: http.MethodPost, path: "/api/pyq/create", body: `course_id=5`, wantCode: http.StatusBadRequest},
		{name: "wrong field type", method: http.MethodPost, path: "/api/pyq/create", body: `{"course_id":"five","year":2023}`, wantCode: http.StatusBadRequest},
		{name: "unsupported media type", method: http.MethodPost, path: "/api/cms/courses", body: `title`, ctype: "text/plain", wantCode: http.StatusUnsupportedMediaType},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantCode: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPatch, path: "/api/cms/courses/1", wantCode: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, []byte(tt.body))
			if tt.ctype != "" {
				req.Header.Set("Content-Type", tt.ctype)
			}
			app.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestServer_requestID(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/health")
	app.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_metrics(t *testing.T) {
	app := setup(t)

	for _, path := range []string{"/health", "/api/cms/courses/abc"} {
		req, rec := newRequest(http.MethodGet, path)
		app.ServeHTTP(rec, req)
	}

	req, rec := newRequest(http.MethodGet, "/metrics")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `http_requests_total{code="200",method="GET",route="/health"} 1`), text)
	assert.True(t, strings.Contains(text, `http_requests_total{code="400",method="GET",route="/api/cms/courses/:id"} 1`), text)
}

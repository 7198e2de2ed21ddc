package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openjudge/arbiter/internal/judge"
	"github.com/openjudge/arbiter/internal/lang"
	"github.com/openjudge/arbiter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor always accepts with the scripted results.
type scriptedExecutor struct {
	results []any
	calls   int
}

func (s *scriptedExecutor) Compile(context.Context) error { return nil }

func (s *scriptedExecutor) Run(context.Context, json.RawMessage) (any, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.results) {
		return s.results[idx], nil
	}
	return nil, nil
}

func (s *scriptedExecutor) Cleanup() {}

func testServer(t *testing.T, results []any, submissions store.Store) *Server {
	t.Helper()

	pipeline := judge.NewPipeline(lang.Config{}, judge.WithExecutorFactory(
		func(language, source, functionName string, cfg lang.Config) (lang.Executor, error) {
			return &scriptedExecutor{results: results}, nil
		}))

	srv, err := NewServer(ServerConfig{
		Bind:     "127.0.0.1",
		Port:     0,
		Pipeline: pipeline,
		Store:    submissions,
	})
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
  "language": "python",
  "source_code": "def add(a, b): return a + b",
  "function_name": "add",
  "test_cases": [{"input": {"a": 2, "b": 3}, "expected_output": 5}]
}`

func TestHandleExecuteAccepted(t *testing.T) {
	srv := testServer(t, []any{float64(5)}, nil)

	rec := doRequest(t, srv, http.MethodPost, "/execute", validBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp judge.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, judge.VerdictAccepted, resp.Verdict)
}

func TestHandleExecuteUnsupportedLanguage(t *testing.T) {
	srv := testServer(t, nil, nil)

	body := strings.Replace(validBody, `"python"`, `"fortran"`, 1)
	rec := doRequest(t, srv, http.MethodPost, "/execute", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unsupported language", resp.Detail)
}

func TestHandleExecuteInvalidJSON(t *testing.T) {
	srv := testServer(t, nil, nil)
	rec := doRequest(t, srv, http.MethodPost, "/execute", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExecuteSchemaViolations(t *testing.T) {
	srv := testServer(t, nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "source too long",
			body: `{"language": "python", "source_code": "` + strings.Repeat("x", 5001) +
				`", "function_name": "f", "test_cases": [{"input": {}}]}`,
		},
		{
			name: "empty source",
			body: `{"language": "python", "source_code": "", "function_name": "f", "test_cases": [{"input": {}}]}`,
		},
		{
			name: "no test cases",
			body: `{"language": "python", "source_code": "x", "function_name": "f", "test_cases": []}`,
		},
		{
			name: "too many test cases",
			body: `{"language": "python", "source_code": "x", "function_name": "f", "test_cases": [` +
				strings.TrimSuffix(strings.Repeat(`{"input": {}},`, 21), ",") + `]}`,
		},
		{
			name: "function name too long",
			body: `{"language": "python", "source_code": "x", "function_name": "` + strings.Repeat("f", 101) +
				`", "test_cases": [{"input": {}}]}`,
		},
		{
			name: "missing function name",
			body: `{"language": "python", "source_code": "x", "test_cases": [{"input": {}}]}`,
		},
		{
			name: "input not an object",
			body: `{"language": "python", "source_code": "x", "function_name": "f", "test_cases": [{"input": [1]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodPost, "/execute", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleExecuteRecordsSubmission(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	submissions, err := store.NewStore(dbPath)
	require.NoError(t, err)
	defer submissions.Close()

	srv := testServer(t, []any{float64(5)}, submissions)

	rec := doRequest(t, srv, http.MethodPost, "/execute", validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	records, err := submissions.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "python", records[0].Language)
	assert.Equal(t, judge.VerdictAccepted, records[0].Verdict)
}

func TestHandleHealthz(t *testing.T) {
	srv := testServer(t, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleLanguages(t *testing.T) {
	srv := testServer(t, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["languages"], 10)
	assert.Contains(t, resp["languages"], "javascript")
}

func TestHandleSubmissionsWithoutStore(t *testing.T) {
	srv := testServer(t, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/submissions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSubmissionsLimitValidation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	submissions, err := store.NewStore(dbPath)
	require.NoError(t, err)
	defer submissions.Close()

	srv := testServer(t, nil, submissions)

	rec := doRequest(t, srv, http.MethodGet, "/api/submissions?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/submissions?limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

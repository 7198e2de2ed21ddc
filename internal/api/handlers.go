package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/openjudge/arbiter/internal/judge"
	"github.com/openjudge/arbiter/internal/lang"
	"github.com/openjudge/arbiter/internal/sandbox"
	"github.com/openjudge/arbiter/internal/store"
)

// maxRequestBody bounds the accepted body well above the schema limits so
// oversized payloads are rejected cheaply.
const maxRequestBody = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > maxRequestBody {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	// The language check precedes schema validation so an unknown tag gets
	// the contract's exact detail string rather than a schema diagnostic.
	var probe struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if _, supported := supportedSet()[probe.Language]; !supported {
		writeError(w, http.StatusBadRequest, "Unsupported language")
		return
	}

	if err := s.validator.Validate(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req judge.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	for _, tc := range req.TestCases {
		if err := judge.Normalize(tc.Input); err != nil {
			writeError(w, http.StatusBadRequest, "test case input must be a JSON object")
			return
		}
	}

	if err := s.admission.Acquire(r.Context(), 1); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.admission.Release(1)

	started := time.Now()
	resp, err := s.pipeline.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, lang.ErrUnsupportedLanguage):
			writeError(w, http.StatusBadRequest, "Unsupported language")
		default:
			var pathErr *sandbox.PathError
			if errors.As(err, &pathErr) {
				writeError(w, http.StatusBadRequest, pathErr.Error())
				return
			}
			log.Printf("execute failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	s.recordSubmission(req, resp, time.Since(started))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) recordSubmission(req judge.Request, resp judge.Response, elapsed time.Duration) {
	if s.store == nil {
		return
	}
	if _, err := s.store.RecordSubmission(store.SubmissionRecord{
		Language:        req.Language,
		FunctionName:    req.FunctionName,
		Verdict:         resp.Verdict,
		FailedTestIndex: resp.FailedTestCaseIndex,
		ErrorMessage:    resp.ErrorMessage,
		DurationMs:      elapsed.Milliseconds(),
	}); err != nil {
		log.Printf("failed to record submission: %v", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"languages": lang.Supported()})
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "submission history is disabled")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = parsed
	}

	records, err := s.store.ListRecent(limit)
	if err != nil {
		log.Printf("failed to list submissions: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	type submissionJSON struct {
		ID              string    `json:"id"`
		Language        string    `json:"language"`
		FunctionName    string    `json:"function_name"`
		Verdict         string    `json:"verdict"`
		FailedTestIndex *int      `json:"failed_test_case_index,omitempty"`
		ErrorMessage    string    `json:"error_message,omitempty"`
		DurationMs      int64     `json:"duration_ms"`
		CreatedAt       time.Time `json:"created_at"`
	}

	out := make([]submissionJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, submissionJSON{
			ID:              rec.ID,
			Language:        rec.Language,
			FunctionName:    rec.FunctionName,
			Verdict:         rec.Verdict,
			FailedTestIndex: rec.FailedTestIndex,
			ErrorMessage:    rec.ErrorMessage,
			DurationMs:      rec.DurationMs,
			CreatedAt:       rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": out})
}

func supportedSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range lang.Supported() {
		set[tag] = struct{}{}
	}
	return set
}

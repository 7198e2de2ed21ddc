package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*TraceLogger, string) {
	t.Helper()
	traceDir := t.TempDir()
	logger, err := NewTraceLogger(traceDir)
	if err != nil {
		t.Fatalf("NewTraceLogger() error = %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger, traceDir
}

func readTrace(t *testing.T, traceDir string) string {
	t.Helper()
	entries, err := os.ReadDir(traceDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one trace file, got %v (err %v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(traceDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("failed to read trace: %v", err)
	}
	return string(data)
}

func TestTraceLoggerCoversSandboxOperations(t *testing.T) {
	logger, traceDir := newTestLogger(t)

	if err := logger.LogWorkspaceCreate("req-1", "/sandbox/job-abc"); err != nil {
		t.Fatalf("LogWorkspaceCreate() error = %v", err)
	}
	if err := logger.LogContainerStart("req-1", "python", "python-sandbox:latest", "cid-123"); err != nil {
		t.Fatalf("LogContainerStart() error = %v", err)
	}
	if err := logger.LogExec("req-1", "cid-123", []string{"python3", "main.py"}); err != nil {
		t.Fatalf("LogExec() error = %v", err)
	}
	if err := logger.LogContainerRemove("req-1", "cid-123"); err != nil {
		t.Fatalf("LogContainerRemove() error = %v", err)
	}
	if err := logger.LogWorkspaceRemove("req-1", "/sandbox/job-abc"); err != nil {
		t.Fatalf("LogWorkspaceRemove() error = %v", err)
	}

	trace := readTrace(t, traceDir)
	lines := strings.Split(strings.TrimSpace(trace), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d trace lines, want 5:\n%s", len(lines), trace)
	}

	for _, want := range []string{
		"[WORKSPACE_CREATE] request=req-1 dir=/sandbox/job-abc",
		"[CONTAINER_START] request=req-1 language=python image=python-sandbox:latest container=cid-123",
		"[EXEC] request=req-1 container=cid-123 argv=python3 main.py",
		"[CONTAINER_RM] request=req-1 container=cid-123",
		"[WORKSPACE_RM] request=req-1 dir=/sandbox/job-abc",
	} {
		if !strings.Contains(trace, want) {
			t.Errorf("trace missing %q", want)
		}
	}
}

func TestTraceLoggerScrubsCredentials(t *testing.T) {
	logger, traceDir := newTestLogger(t)

	err := logger.LogExec("req-2", "cid-456", []string{
		"sh", "-c", "API_KEY=abc123 ./solution",
	})
	if err != nil {
		t.Fatalf("LogExec() error = %v", err)
	}

	trace := readTrace(t, traceDir)
	if strings.Contains(trace, "abc123") {
		t.Errorf("credential survived scrubbing: %s", trace)
	}
	if !strings.Contains(trace, "[REDACTED]") {
		t.Errorf("expected [REDACTED] marker: %s", trace)
	}
}

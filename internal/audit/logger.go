package audit

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Logger records every sandbox operation a request performs: container
// start, each exec, container remove, and workspace create/remove. The
// executors call it at the point the operation happens, so a trace shows the
// per-test-case exec sequence, not just request-level milestones.
type Logger interface {
	LogContainerStart(requestID, language, image, containerID string) error
	LogExec(requestID, containerID string, argv []string) error
	LogContainerRemove(requestID, containerID string) error
	LogWorkspaceCreate(requestID, dir string) error
	LogWorkspaceRemove(requestID, dir string) error
	Close() error
}

// NopLogger satisfies Logger without writing anything.
type NopLogger struct{}

func (NopLogger) LogContainerStart(string, string, string, string) error { return nil }
func (NopLogger) LogExec(string, string, []string) error                 { return nil }
func (NopLogger) LogContainerRemove(string, string) error                { return nil }
func (NopLogger) LogWorkspaceCreate(string, string) error                { return nil }
func (NopLogger) LogWorkspaceRemove(string, string) error                { return nil }
func (NopLogger) Close() error                                           { return nil }

// Exec argv can echo submission text (compiler arguments, harness paths) and
// submissions sometimes paste secrets; scrub anything credential-shaped
// before it reaches disk.
var credentialPatterns = []string{
	`API[_-]?KEY`,
	`TOKEN`,
	`SECRET`,
	`PASSWORD`,
	`CREDENTIAL`,
	`AUTH`,
	`PRIVATE[_-]?KEY`,
	`ACCESS[_-]?KEY`,
}

// TraceLogger appends one line per operation to a timestamped file under the
// trace directory.
type TraceLogger struct {
	traceDir  string
	credRegex *regexp.Regexp
	file      *os.File
}

func NewTraceLogger(traceDir string) (*TraceLogger, error) {
	if traceDir == "" {
		traceDir = ".arbiter/traces"
	}
	pattern := `(?i)(` + strings.Join(credentialPatterns, `|`) + `)[=:]?\s*[\w\-]+`
	credRegex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(traceDir, 0o755); err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102-150405")
	tracePath := filepath.Join(traceDir, "trace-"+timestamp+".log")
	file, err := os.OpenFile(tracePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &TraceLogger{
		traceDir:  traceDir,
		credRegex: credRegex,
		file:      file,
	}, nil
}

func (l *TraceLogger) scrub(text string) string {
	return l.credRegex.ReplaceAllString(text, "[REDACTED]")
}

func (l *TraceLogger) write(kind, requestID, detail string) error {
	line := time.Now().Format(time.RFC3339Nano) + " [" + kind + "] request=" + requestID
	if detail != "" {
		line += " " + l.scrub(detail)
	}
	_, err := l.file.WriteString(line + "\n")
	return err
}

func (l *TraceLogger) LogContainerStart(requestID, language, image, containerID string) error {
	return l.write("CONTAINER_START", requestID,
		"language="+language+" image="+image+" container="+containerID)
}

func (l *TraceLogger) LogExec(requestID, containerID string, argv []string) error {
	return l.write("EXEC", requestID,
		"container="+containerID+" argv="+strings.Join(argv, " "))
}

func (l *TraceLogger) LogContainerRemove(requestID, containerID string) error {
	return l.write("CONTAINER_RM", requestID, "container="+containerID)
}

func (l *TraceLogger) LogWorkspaceCreate(requestID, dir string) error {
	return l.write("WORKSPACE_CREATE", requestID, "dir="+dir)
}

func (l *TraceLogger) LogWorkspaceRemove(requestID, dir string) error {
	return l.write("WORKSPACE_RM", requestID, "dir="+dir)
}

func (l *TraceLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

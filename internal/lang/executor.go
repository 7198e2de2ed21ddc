package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openjudge/arbiter/internal/audit"
	"github.com/openjudge/arbiter/internal/harness"
	"github.com/openjudge/arbiter/internal/sandbox"
)

// Executor is the per-request execution engine for one language. The state
// machine is NEW → READY (container alive, binary built) → CLOSED; Run is
// only admitted in READY, Compile is idempotent for the executor's lifetime,
// and Cleanup is terminal and safe from any state.
type Executor interface {
	// Compile creates the workspace, renders the harness, starts the sandbox
	// container, and runs the toolchain for compiled languages. A *CompileError
	// is a verdict; any other error is an infrastructure failure.
	Compile(ctx context.Context) error

	// Run executes one test case inside the running container and returns the
	// decoded result value. Typed failures: *RuntimeError, *TimeoutError.
	Run(ctx context.Context, input json.RawMessage) (any, error)

	// Cleanup force-removes the container, then deletes the workspace.
	// Idempotent; errors are swallowed by contract.
	Cleanup()
}

// Config carries the shared collaborators an executor needs. Images maps
// language tags to pre-baked sandbox image tags; missing entries fall back to
// the language's default. Audit and RequestID are set per request by the
// pipeline so every container and workspace operation lands in the trace.
type Config struct {
	Runner    *sandbox.Runner
	Images    map[string]string
	Policy    sandbox.Policy
	Audit     audit.Logger
	RequestID string
}

func (c Config) image(tag, fallback string) string {
	if img, ok := c.Images[tag]; ok && img != "" {
		return img
	}
	return fallback
}

func (c Config) audit() audit.Logger {
	if c.Audit == nil {
		return audit.NopLogger{}
	}
	return c.Audit
}

// langSpec is the per-language wiring a dockerExecutor runs with. render
// returns the files to place in the workspace keyed by relative path;
// stdinPayload builds the bytes fed to the run exec (JSON envelope for every
// language except C's whitespace framing).
type langSpec struct {
	tag          string
	image        string
	workdir      string
	compileCmd   []string
	compileCheck []string // post-compile existence probe (tsc reports success without output on some inputs)
	runCmd       []string
	render       func(source, functionName string) (map[string]string, error)
	stdinPayload func(functionName string, input json.RawMessage) (string, error)
}

type execState int

const (
	stateNew execState = iota
	stateReady
	stateClosed
)

// dockerExecutor implements Executor over a detached sleep-mode container
// with the workspace bind-mounted at /app. The container id and workspace are
// jointly owned and released together in Cleanup, container first.
type dockerExecutor struct {
	spec         langSpec
	source       string
	functionName string
	cfg          Config

	state       execState
	ws          *sandbox.Workspace
	containerID string
}

func newDockerExecutor(spec langSpec, source, functionName string, cfg Config) *dockerExecutor {
	if spec.stdinPayload == nil {
		spec.stdinPayload = jsonEnvelope
	}
	if spec.workdir == "" {
		spec.workdir = "/app"
	}
	return &dockerExecutor{
		spec:         spec,
		source:       source,
		functionName: functionName,
		cfg:          cfg,
	}
}

func (e *dockerExecutor) Compile(ctx context.Context) error {
	switch e.state {
	case stateReady:
		return nil
	case stateClosed:
		return errors.New("executor is closed")
	}

	roots, err := sandbox.ResolveRoots()
	if err != nil {
		return err
	}

	files, err := e.spec.render(e.source, e.functionName)
	if err != nil {
		var unresolved *harness.UnresolvedTokenError
		if errors.As(err, &unresolved) {
			return &CompileError{Message: unresolved.Error()}
		}
		var compileErr *CompileError
		if errors.As(err, &compileErr) {
			return compileErr
		}
		return fmt.Errorf("harness rendering failed: %w", err)
	}

	ws, err := sandbox.NewWorkspace(roots)
	if err != nil {
		return err
	}
	e.ws = ws
	e.cfg.audit().LogWorkspaceCreate(e.cfg.RequestID, ws.Dir)

	for rel, contents := range files {
		if err := ws.WriteFile(rel, contents); err != nil {
			e.Cleanup()
			return err
		}
	}

	containerID, err := e.cfg.Runner.Start(ctx, sandbox.StartSpec{
		Image:   e.spec.image,
		HostDir: ws.HostDir,
		Workdir: e.spec.workdir,
		Policy:  e.cfg.Policy,
	})
	if err != nil {
		e.Cleanup()
		return err
	}
	e.containerID = containerID
	e.cfg.audit().LogContainerStart(e.cfg.RequestID, e.spec.tag, e.spec.image, containerID)

	if len(e.spec.compileCmd) > 0 {
		e.cfg.audit().LogExec(e.cfg.RequestID, containerID, e.spec.compileCmd)
		res, err := e.cfg.Runner.Exec(ctx, containerID, e.spec.compileCmd, "", e.cfg.Policy.CompileTimeout)
		if errors.Is(err, sandbox.ErrDeadline) {
			return &CompileError{Message: "Compilation timed out"}
		}
		if err != nil {
			return fmt.Errorf("compiler exec failed: %w", err)
		}
		if res.ExitCode != 0 {
			return &CompileError{Message: e.compileDiagnostic(res)}
		}
	}

	if len(e.spec.compileCheck) > 0 {
		e.cfg.audit().LogExec(e.cfg.RequestID, containerID, e.spec.compileCheck)
		res, err := e.cfg.Runner.Exec(ctx, containerID, e.spec.compileCheck, "", e.cfg.Policy.CompileTimeout)
		if err != nil || res.ExitCode != 0 {
			return &CompileError{Message: "Compilation failed: expected output not generated"}
		}
	}

	e.state = stateReady
	return nil
}

func (e *dockerExecutor) compileDiagnostic(res sandbox.ExecResult) string {
	message := strings.TrimSpace(string(res.Stderr))
	if message == "" {
		message = strings.TrimSpace(string(res.Stdout))
	}
	if message == "" {
		message = "Compilation failed"
	}
	if max := e.cfg.Policy.MaxCompileError; max > 0 && len(message) > max {
		message = message[:max]
	}
	return message
}

func (e *dockerExecutor) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if e.state != stateReady {
		return nil, &RuntimeError{Message: "Container not initialized"}
	}

	payload, err := e.spec.stdinPayload(e.functionName, input)
	if err != nil {
		return nil, &RuntimeError{Message: err.Error()}
	}

	e.cfg.audit().LogExec(e.cfg.RequestID, e.containerID, e.spec.runCmd)
	res, err := e.cfg.Runner.Exec(ctx, e.containerID, e.spec.runCmd, payload, e.cfg.Policy.ExecTimeout)
	if errors.Is(err, sandbox.ErrDeadline) {
		return nil, &TimeoutError{}
	}
	if err != nil {
		return nil, fmt.Errorf("test exec failed: %w", err)
	}

	if len(res.Stdout) > e.cfg.Policy.MaxStdoutBytes {
		return nil, &RuntimeError{Message: "Output limit exceeded"}
	}

	if res.ExitCode != 0 {
		return nil, &RuntimeError{Message: runDiagnostic(res)}
	}

	var envelope map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(res.Stdout), &envelope); err != nil {
		return nil, &RuntimeError{Message: "Invalid output format"}
	}
	return envelope["result"], nil
}

// runDiagnostic prefers the harness's JSON error envelope, then stderr, then
// a generic label.
func runDiagnostic(res sandbox.ExecResult) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(res.Stdout), &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return msg
	}
	return "Runtime error"
}

func (e *dockerExecutor) Cleanup() {
	if e.state == stateClosed {
		return
	}
	e.state = stateClosed

	if e.containerID != "" {
		e.cfg.Runner.Remove(e.containerID)
		e.cfg.audit().LogContainerRemove(e.cfg.RequestID, e.containerID)
		e.containerID = ""
	}
	if e.ws != nil {
		_ = e.ws.Remove()
		e.cfg.audit().LogWorkspaceRemove(e.cfg.RequestID, e.ws.Dir)
		e.ws = nil
	}
}

// jsonEnvelope assembles the harness stdin line. The input object is spliced
// in raw so the client's JSON key order survives for positional binding.
func jsonEnvelope(functionName string, input json.RawMessage) (string, error) {
	name, err := json.Marshal(functionName)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(input)) == 0 {
		input = json.RawMessage("{}")
	}
	return fmt.Sprintf(`{"function_name":%s,"input":%s}`, name, input), nil
}

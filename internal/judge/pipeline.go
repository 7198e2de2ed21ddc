package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openjudge/arbiter/internal/audit"
	"github.com/openjudge/arbiter/internal/event"
	"github.com/openjudge/arbiter/internal/lang"
)

// Pipeline orchestrates one request: look up the executor, compile once, run
// the tests in submitted order with stop-on-first-failure, and always clean
// up, success path included. Cleanup failures are swallowed.
type Pipeline struct {
	cfg         lang.Config
	emitter     event.Emitter
	logger      audit.Logger
	newExecutor ExecutorFactory
}

// ExecutorFactory builds the executor for a language tag. The default is the
// lang registry; tests substitute fakes.
type ExecutorFactory func(language, source, functionName string, cfg lang.Config) (lang.Executor, error)

type Option func(*Pipeline)

func WithEmitter(e event.Emitter) Option {
	return func(p *Pipeline) { p.emitter = e }
}

func WithAuditLogger(l audit.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

func WithExecutorFactory(f ExecutorFactory) Option {
	return func(p *Pipeline) { p.newExecutor = f }
}

func NewPipeline(cfg lang.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:         cfg,
		emitter:     event.NopEmitter{},
		logger:      audit.NopLogger{},
		newExecutor: lang.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute returns exactly one verdict per request. Typed execution failures
// become verdicts; anything else (daemon down, filesystem trouble) is
// returned as an error for the caller to surface as a server failure.
// lang.ErrUnsupportedLanguage passes through for the boundary's 400.
func (p *Pipeline) Execute(ctx context.Context, req Request) (Response, error) {
	requestID := uuid.NewString()

	// Executors log their own container and workspace operations; hand them
	// the trace logger and the request id for correlation.
	cfg := p.cfg
	cfg.Audit = p.logger
	cfg.RequestID = requestID

	executor, err := p.newExecutor(req.Language, req.SourceCode, req.FunctionName, cfg)
	if err != nil {
		return Response{}, err
	}
	defer executor.Cleanup()

	p.emit(requestID, req.Language, event.StageCompile, event.StateStarted, nil, 0, "")
	compileStart := time.Now()

	if err := executor.Compile(ctx); err != nil {
		var compileErr *lang.CompileError
		if errors.As(err, &compileErr) {
			p.emit(requestID, req.Language, event.StageCompile, event.StateFailed, nil,
				time.Since(compileStart).Milliseconds(), compileErr.Message)
			return compilationError(compileErr.Message), nil
		}
		return Response{}, fmt.Errorf("compile stage failed: %w", err)
	}
	p.emit(requestID, req.Language, event.StageCompile, event.StateCompleted, nil,
		time.Since(compileStart).Milliseconds(), "")

	for index, tc := range req.TestCases {
		index := index
		p.emit(requestID, req.Language, event.StageTest, event.StateStarted, &index, 0, "")
		testStart := time.Now()

		result, err := executor.Run(ctx, tc.Input)
		elapsed := time.Since(testStart).Milliseconds()

		if err != nil {
			var runtimeErr *lang.RuntimeError
			if errors.As(err, &runtimeErr) {
				p.emit(requestID, req.Language, event.StageTest, event.StateFailed, &index, elapsed, runtimeErr.Message)
				return runtimeError(index, runtimeErr.Message), nil
			}
			var timeoutErr *lang.TimeoutError
			if errors.As(err, &timeoutErr) {
				p.emit(requestID, req.Language, event.StageTest, event.StateFailed, &index, elapsed, "timed out")
				return timeout(index), nil
			}
			return Response{}, fmt.Errorf("test %d failed: %w", index, err)
		}

		expected, err := decodeExpected(tc.ExpectedOutput)
		if err != nil {
			return Response{}, fmt.Errorf("test %d has invalid expected output: %w", index, err)
		}

		if !jsonEqual(result, expected) {
			p.emit(requestID, req.Language, event.StageTest, event.StateFailed, &index, elapsed, "wrong answer")
			return wrongAnswer(index), nil
		}
		p.emit(requestID, req.Language, event.StageTest, event.StateCompleted, &index, elapsed, "")
	}

	p.emit(requestID, req.Language, event.StageVerdict, event.StateCompleted, nil, 0, VerdictAccepted)
	return accepted(), nil
}

func (p *Pipeline) emit(requestID, language, stage, state string, testIndex *int, durationMs int64, message string) {
	p.emitter.Emit(event.Event{
		Timestamp:  time.Now(),
		RequestID:  requestID,
		Language:   language,
		Stage:      stage,
		State:      state,
		TestIndex:  testIndex,
		DurationMs: durationMs,
		Message:    message,
	})
}

// Normalize checks that a raw test input decodes as a JSON object, so
// malformed documents fail before a container ever starts. Boundary layers call it during validation.
func Normalize(raw json.RawMessage) error {
	var probe map[string]json.RawMessage
	return json.Unmarshal(raw, &probe)
}

package judge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/openjudge/arbiter/internal/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor scripts the executor contract for pipeline tests.
type fakeExecutor struct {
	compileErr error
	results    []any   // per test index
	runErrs    []error // per test index

	compileCalls int
	runCalls     int
	cleanedUp    bool
}

func (f *fakeExecutor) Compile(context.Context) error {
	f.compileCalls++
	return f.compileErr
}

func (f *fakeExecutor) Run(_ context.Context, _ json.RawMessage) (any, error) {
	idx := f.runCalls
	f.runCalls++
	if idx < len(f.runErrs) && f.runErrs[idx] != nil {
		return nil, f.runErrs[idx]
	}
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, nil
}

func (f *fakeExecutor) Cleanup() {
	f.cleanedUp = true
}

func pipelineWith(f *fakeExecutor) *Pipeline {
	return NewPipeline(lang.Config{}, WithExecutorFactory(
		func(language, source, functionName string, cfg lang.Config) (lang.Executor, error) {
			if language == "fortran" {
				return nil, lang.ErrUnsupportedLanguage
			}
			return f, nil
		}))
}

func request(tests ...TestCase) Request {
	return Request{
		Language:     "python",
		SourceCode:   "def add(a, b): return a + b",
		FunctionName: "add",
		TestCases:    tests,
	}
}

func tc(input, expected string) TestCase {
	return TestCase{
		Input:          json.RawMessage(input),
		ExpectedOutput: json.RawMessage(expected),
	}
}

func TestExecuteAccepted(t *testing.T) {
	fake := &fakeExecutor{results: []any{float64(5), float64(2)}}
	p := pipelineWith(fake)

	resp, err := p.Execute(t.Context(), request(
		tc(`{"a": 2, "b": 3}`, `5`),
		tc(`{"a": 1, "b": 1}`, `2`),
	))
	require.NoError(t, err)

	assert.Equal(t, VerdictAccepted, resp.Verdict)
	assert.Nil(t, resp.FailedTestCaseIndex)
	assert.Empty(t, resp.ErrorMessage)
	assert.Equal(t, 2, fake.runCalls)
	assert.True(t, fake.cleanedUp, "cleanup must run on the success path")
}

func TestExecuteWrongAnswerStopsEarly(t *testing.T) {
	fake := &fakeExecutor{results: []any{float64(5), float64(2), float64(9)}}
	p := pipelineWith(fake)

	resp, err := p.Execute(t.Context(), request(
		tc(`{"a": 2, "b": 3}`, `5`),
		tc(`{"a": 1, "b": 1}`, `3`), // mismatch
		tc(`{"a": 4, "b": 5}`, `9`),
	))
	require.NoError(t, err)

	assert.Equal(t, VerdictWrongAnswer, resp.Verdict)
	require.NotNil(t, resp.FailedTestCaseIndex)
	assert.Equal(t, 1, *resp.FailedTestCaseIndex)
	assert.Equal(t, 2, fake.runCalls, "tests after the first failure must not run")
	assert.True(t, fake.cleanedUp)
}

func TestExecuteRuntimeError(t *testing.T) {
	fake := &fakeExecutor{
		runErrs: []error{&lang.RuntimeError{Message: "ZeroDivisionError: division by zero"}},
	}
	p := pipelineWith(fake)

	resp, err := p.Execute(t.Context(), request(tc(`{"a": 1, "b": 0}`, `0`)))
	require.NoError(t, err)

	assert.Equal(t, VerdictRuntimeError, resp.Verdict)
	require.NotNil(t, resp.FailedTestCaseIndex)
	assert.Equal(t, 0, *resp.FailedTestCaseIndex)
	assert.Contains(t, resp.ErrorMessage, "ZeroDivisionError")
	assert.True(t, fake.cleanedUp)
}

func TestExecuteTimeout(t *testing.T) {
	fake := &fakeExecutor{runErrs: []error{&lang.TimeoutError{}}}
	p := pipelineWith(fake)

	resp, err := p.Execute(t.Context(), request(tc(`{"n": 1}`, `null`)))
	require.NoError(t, err)

	assert.Equal(t, VerdictTimeout, resp.Verdict)
	require.NotNil(t, resp.FailedTestCaseIndex)
	assert.Equal(t, 0, *resp.FailedTestCaseIndex)
	assert.Empty(t, resp.ErrorMessage)
}

func TestExecuteCompilationError(t *testing.T) {
	fake := &fakeExecutor{compileErr: &lang.CompileError{Message: "syntax error near line 1"}}
	p := pipelineWith(fake)

	resp, err := p.Execute(t.Context(), request(tc(`{"a": 1}`, `1`)))
	require.NoError(t, err)

	assert.Equal(t, VerdictCompilationError, resp.Verdict)
	assert.Nil(t, resp.FailedTestCaseIndex)
	assert.Contains(t, resp.ErrorMessage, "syntax error")
	assert.Equal(t, 0, fake.runCalls, "no test runs after a compile failure")
	assert.True(t, fake.cleanedUp, "cleanup must run after a compile failure")
}

func TestExecuteInfrastructureErrorPropagates(t *testing.T) {
	fake := &fakeExecutor{compileErr: errors.New("daemon unreachable")}
	p := pipelineWith(fake)

	_, err := p.Execute(t.Context(), request(tc(`{"a": 1}`, `1`)))
	require.Error(t, err)
	assert.True(t, fake.cleanedUp, "cleanup must run even when the failure propagates")
}

func TestExecuteUnsupportedLanguage(t *testing.T) {
	p := pipelineWith(&fakeExecutor{})

	req := request(tc(`{"a": 1}`, `1`))
	req.Language = "fortran"

	_, err := p.Execute(t.Context(), req)
	assert.ErrorIs(t, err, lang.ErrUnsupportedLanguage)
}

func TestExecuteExactlyOneCompile(t *testing.T) {
	fake := &fakeExecutor{results: []any{nil, nil, nil}}
	p := pipelineWith(fake)

	_, err := p.Execute(t.Context(), request(
		tc(`{"a": 1}`, `null`),
		tc(`{"a": 2}`, `null`),
		tc(`{"a": 3}`, `null`),
	))
	require.NoError(t, err)
	assert.Equal(t, 1, fake.compileCalls, "compile runs once per request")
}

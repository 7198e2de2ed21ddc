package lang

import (
	"encoding/json"
	"testing"

	"github.com/openjudge/arbiter/internal/sandbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEnvelopePreservesInputOrder(t *testing.T) {
	payload, err := jsonEnvelope("solve", json.RawMessage(`{"b": 2, "a": 1}`))
	require.NoError(t, err)

	// The input document is spliced in raw, byte for byte.
	assert.Equal(t, `{"function_name":"solve","input":{"b": 2, "a": 1}}`, payload)
}

func TestJSONEnvelopeEmptyInput(t *testing.T) {
	payload, err := jsonEnvelope("solve", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"function_name":"solve","input":{}}`, payload)
}

func TestJSONEnvelopeEscapesFunctionName(t *testing.T) {
	payload, err := jsonEnvelope(`so"lve`, json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"function_name":"so\"lve","input":{}}`, payload)
}

func TestRunDiagnosticPrefersEnvelope(t *testing.T) {
	res := sandbox.ExecResult{
		Stdout:   []byte(`{"error": "division by zero"}`),
		Stderr:   []byte("Traceback ..."),
		ExitCode: 1,
	}
	assert.Equal(t, "division by zero", runDiagnostic(res))
}

func TestRunDiagnosticFallsBackToStderr(t *testing.T) {
	res := sandbox.ExecResult{
		Stdout:   []byte("not json"),
		Stderr:   []byte("segmentation fault"),
		ExitCode: 139,
	}
	assert.Equal(t, "segmentation fault", runDiagnostic(res))
}

func TestRunDiagnosticGenericLabel(t *testing.T) {
	res := sandbox.ExecResult{ExitCode: 1}
	assert.Equal(t, "Runtime error", runDiagnostic(res))
}

func TestOrderedFields(t *testing.T) {
	fields, err := orderedFields(json.RawMessage(`{"z": 1, "a": [2, 3], "m": {"k": 4}}`))
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "z", fields[0].Key)
	assert.Equal(t, "a", fields[1].Key)
	assert.Equal(t, "m", fields[2].Key)
	assert.JSONEq(t, `[2, 3]`, string(fields[1].Value))
}

func TestOrderedFieldsRejectsNonObject(t *testing.T) {
	_, err := orderedFields(json.RawMessage(`[1, 2]`))
	assert.Error(t, err)
}

func TestRunRequiresReadyState(t *testing.T) {
	exec := newDockerExecutor(langSpec{tag: "python"}, "code", "f", Config{})
	_, err := exec.Run(t.Context(), json.RawMessage(`{}`))

	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, "Container not initialized", runtimeErr.Message)
}

func TestCleanupIdempotentFromNew(t *testing.T) {
	exec := newDockerExecutor(langSpec{tag: "python"}, "code", "f", Config{Runner: sandbox.NewRunner()})
	exec.Cleanup()
	exec.Cleanup()

	// A closed executor refuses to compile.
	err := exec.Compile(t.Context())
	assert.Error(t, err)
}

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidatorAcceptsContract(t *testing.T) {
	v, err := newRequestValidator()
	require.NoError(t, err)

	body := []byte(`{
		"language": "cpp",
		"source_code": "int add(int a, int b){return a+b;}",
		"function_name": "add",
		"test_cases": [
			{"input": {"a": 2, "b": 3}, "expected_output": 5},
			{"input": {"a": 1, "b": 1}}
		]
	}`)
	assert.NoError(t, v.Validate(body))
}

func TestRequestValidatorRejectsUnknownFields(t *testing.T) {
	v, err := newRequestValidator()
	require.NoError(t, err)

	body := []byte(`{
		"language": "python",
		"source_code": "x",
		"function_name": "f",
		"test_cases": [{"input": {}}],
		"extra": true
	}`)
	assert.Error(t, v.Validate(body))
}

func TestRequestValidatorRejectsLegacyJSTag(t *testing.T) {
	// The external contract mandates "javascript"; the short tag is not part
	// of the enum.
	v, err := newRequestValidator()
	require.NoError(t, err)

	body := []byte(`{
		"language": "js",
		"source_code": "function f() {}",
		"function_name": "f",
		"test_cases": [{"input": {}}]
	}`)
	assert.Error(t, v.Validate(body))
}

func TestValidateRequestHelper(t *testing.T) {
	assert.Error(t, ValidateRequest([]byte("not json")))
	assert.NoError(t, ValidateRequest([]byte(`{
		"language": "go",
		"source_code": "func add(a int, b int) int { return a + b }",
		"function_name": "add",
		"test_cases": [{"input": {"a": 1, "b": 2}, "expected_output": 3}]
	}`)))
}

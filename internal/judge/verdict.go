package judge

import "encoding/json"

// Verdict tags. Exactly one verdict per request; the first failing test wins
// and later tests never run.
const (
	VerdictAccepted         = "accepted"
	VerdictWrongAnswer      = "wrong_answer"
	VerdictRuntimeError     = "runtime_error"
	VerdictCompilationError = "compilation_error"
	VerdictTimeout          = "timeout"
)

// TestCase pairs one input mapping with its expected output. Both sides stay
// raw: the input's key order encodes positional binding for languages that
// cannot recover parameter names, and the expected output is decoded only at
// comparison time.
type TestCase struct {
	Input          json.RawMessage `json:"input"`
	ExpectedOutput json.RawMessage `json:"expected_output"`
}

// Request is the immutable judging request. Boundary validation (sizes,
// counts, language enum) happens in the API layer before a Request is built.
type Request struct {
	Language     string     `json:"language"`
	SourceCode   string     `json:"source_code"`
	FunctionName string     `json:"function_name"`
	TestCases    []TestCase `json:"test_cases"`
}

// Response is the verdict union in its wire shape.
type Response struct {
	Verdict             string `json:"verdict"`
	FailedTestCaseIndex *int   `json:"failed_test_case_index,omitempty"`
	ErrorMessage        string `json:"error_message,omitempty"`
}

func accepted() Response {
	return Response{Verdict: VerdictAccepted}
}

func wrongAnswer(index int) Response {
	return Response{Verdict: VerdictWrongAnswer, FailedTestCaseIndex: &index}
}

func runtimeError(index int, message string) Response {
	return Response{Verdict: VerdictRuntimeError, FailedTestCaseIndex: &index, ErrorMessage: message}
}

func compilationError(message string) Response {
	return Response{Verdict: VerdictCompilationError, ErrorMessage: message}
}

func timeout(index int) Response {
	return Response{Verdict: VerdictTimeout, FailedTestCaseIndex: &index}
}

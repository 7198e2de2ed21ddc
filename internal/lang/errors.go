package lang

// The three typed execution failures the pipeline maps to verdicts. Anything
// else an executor returns is an infrastructure failure and propagates to the
// caller untyped.

// CompileError carries the trimmed toolchain output (or a render-stage
// diagnosis) for a submission that never became runnable.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

// RuntimeError reports a failed run of one test case: non-zero exit, invalid
// harness output, or an exceeded output cap.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// TimeoutError reports a test exec that outlived its wall-clock budget.
type TimeoutError struct{}

func (e *TimeoutError) Error() string {
	return "execution timed out"
}

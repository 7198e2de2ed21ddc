package harness

// C-specific generator tokens. The C harness carries no JSON parser, so
// inputs arrive as whitespace-delimited stdin (one scalar per line, arrays as
// a length line followed by space-separated values); the result envelope is
// still printed as JSON because emitting it needs nothing but printf.
const (
	TokenInputDecls   = "__INPUT_DECLARATION_PLACEHOLDER__"
	TokenInputScan    = "__INPUT_SCAN_PLACEHOLDER__"
	TokenFunctionCall = "__FUNCTION_CALL_PLACEHOLDER__"
	TokenOutputPrint  = "__OUTPUT_PRINT_PLACEHOLDER__"
	TokenCleanup      = "__CLEANUP_PLACEHOLDER__"
)

const C = `#include <stdio.h>
#include <stdlib.h>

__SOURCE_CODE_PLACEHOLDER__

int main(void) {
    __INPUT_DECLARATION_PLACEHOLDER__

    __INPUT_SCAN_PLACEHOLDER__

    __FUNCTION_CALL_PLACEHOLDER__
    __OUTPUT_PRINT_PLACEHOLDER__

    __CLEANUP_PLACEHOLDER__
    return 0;
}
`

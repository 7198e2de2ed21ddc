// Package harness holds the per-language wrapper templates and the rendering
// machinery that turns one of them plus a user submission into a single
// concrete program. Templates are literal strings with named placeholder
// tokens; rendering is pure substitution and no further code generation
// happens inside the sandbox.
package harness

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder tokens shared across templates. Language-specific generators
// add their own (see the C and C++ templates).
const (
	TokenSourceCode    = "__SOURCE_CODE_PLACEHOLDER__"
	TokenFunctionName  = "__FUNCTION_NAME_PLACEHOLDER__"
	TokenParamBindings = "__PARAM_BINDINGS_PLACEHOLDER__"
	TokenInvokerSetup  = "__INVOKER_SETUP_PLACEHOLDER__"
	TokenCall          = "__CALL_PLACEHOLDER__"
)

// placeholderPattern matches any unresolved template token. A rendered
// program still matching it must never reach a toolchain.
var placeholderPattern = regexp.MustCompile(`__[A-Z0-9_]+_PLACEHOLDER__`)

// UnresolvedTokenError reports a template expansion that left a placeholder
// behind. Executors surface it as a compilation error, not a runtime one.
type UnresolvedTokenError struct {
	Token string
}

func (e *UnresolvedTokenError) Error() string {
	return fmt.Sprintf("harness rendering left unresolved token %s", e.Token)
}

// Render substitutes every token in subs into the template in a single pass,
// then refuses the result if any placeholder-shaped token survives.
// Substituted text (user source included) is never re-scanned; a submission
// that spells a placeholder token itself fails deterministically.
func Render(template string, subs map[string]string) (string, error) {
	pairs := make([]string, 0, len(subs)*2)
	for token, value := range subs {
		pairs = append(pairs, token, value)
	}

	rendered := strings.NewReplacer(pairs...).Replace(template)

	if tok := placeholderPattern.FindString(rendered); tok != "" {
		return "", &UnresolvedTokenError{Token: tok}
	}
	return rendered, nil
}

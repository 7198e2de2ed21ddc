package harness

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderSubstitutes(t *testing.T) {
	out, err := Render("hello __SOURCE_CODE_PLACEHOLDER__", map[string]string{
		TokenSourceCode: "world",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "hello world" {
		t.Errorf("Render() = %q", out)
	}
}

func TestRenderRefusesUnresolvedTokens(t *testing.T) {
	_, err := Render("x __PARAM_BINDINGS_PLACEHOLDER__ y", map[string]string{
		TokenSourceCode: "unused",
	})

	var unresolved *UnresolvedTokenError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *UnresolvedTokenError, got %v", err)
	}
	if unresolved.Token != "__PARAM_BINDINGS_PLACEHOLDER__" {
		t.Errorf("Token = %q", unresolved.Token)
	}
}

// A submission that itself spells a placeholder token must fail
// deterministically rather than reach a toolchain.
func TestRenderRefusesTokenSmuggledInSource(t *testing.T) {
	_, err := Render("__SOURCE_CODE_PLACEHOLDER__", map[string]string{
		TokenSourceCode: "def f():\n    return '__EVIL_PLACEHOLDER__'",
	})

	var unresolved *UnresolvedTokenError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *UnresolvedTokenError, got %v", err)
	}
}

// Substitution is single-pass: a substituted value spelling another token is
// never re-expanded, so the completeness check sees the literal token and
// rejects the render.
func TestRenderSinglePass(t *testing.T) {
	_, err := Render("__SOURCE_CODE_PLACEHOLDER__ __FUNCTION_NAME_PLACEHOLDER__", map[string]string{
		TokenSourceCode:   "__FUNCTION_NAME_PLACEHOLDER__",
		TokenFunctionName: "add",
	})

	var unresolved *UnresolvedTokenError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *UnresolvedTokenError for smuggled token, got %v", err)
	}
}

// Every reflection template must render clean from a single source
// substitution.
func TestReflectionTemplatesRenderClean(t *testing.T) {
	templates := map[string]string{
		"python":     Python,
		"javascript": JavaScript,
		"typescript": TypeScript,
		"java":       Java,
		"kotlin":     Kotlin,
		"csharp":     CSharp,
	}

	for name, tmpl := range templates {
		t.Run(name, func(t *testing.T) {
			out, err := Render(tmpl, map[string]string{
				TokenSourceCode: "placeholder-free user code",
			})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if placeholderPattern.MatchString(out) {
				t.Errorf("rendered %s template still contains a placeholder", name)
			}
			if !strings.Contains(out, "placeholder-free user code") {
				t.Errorf("rendered %s template lost the source", name)
			}
		})
	}
}

// The generated-code templates list every token their generators must fill.
func TestGeneratedTemplatesTokenInventory(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		tokens []string
	}{
		{
			name: "go",
			tmpl: Golang,
			tokens: []string{
				TokenSourceCode, TokenFunctionName,
				TokenParamBindings, TokenInvokerSetup, TokenCall,
			},
		},
		{
			name: "c",
			tmpl: C,
			tokens: []string{
				TokenSourceCode, TokenInputDecls, TokenInputScan,
				TokenFunctionCall, TokenOutputPrint, TokenCleanup,
			},
		},
		{
			name: "cpp",
			tmpl: Cpp,
			tokens: []string{
				TokenSourceCode, TokenFunctionName, TokenParamDeser,
				TokenCallPrefix, TokenArgList, TokenReturnSer,
			},
		},
		{
			name: "rust",
			tmpl: Rust,
			tokens: []string{
				TokenSourceCode, TokenFunctionName,
				TokenParamBindings, TokenCall,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := make(map[string]string, len(tt.tokens))
			for _, token := range tt.tokens {
				if !strings.Contains(tt.tmpl, token) {
					t.Errorf("template missing token %s", token)
				}
				subs[token] = "filled"
			}
			out, err := Render(tt.tmpl, subs)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if placeholderPattern.MatchString(out) {
				t.Errorf("template has a token outside its inventory: %s",
					placeholderPattern.FindString(out))
			}
		})
	}
}

package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openjudge/arbiter/internal/harness"
)

// Go submissions have no usable runtime reflection, so the executor scans the
// source for the target function's signature and generates explicit
// deserialisation, call, and serialisation code into the harness.

const goImage = "go-sandbox:latest"

func newGo(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:   "go",
		image: cfg.image("go", goImage),
		compileCmd: []string{
			"go", "build", "-buildvcs=false", "-trimpath", "-o", "main", "main.go",
		},
		runCmd: []string{"./main"},
		render: func(source, functionName string) (map[string]string, error) {
			rendered, err := renderGoHarness(source, functionName)
			if err != nil {
				return nil, err
			}
			return map[string]string{"main.go": rendered}, nil
		},
	}, source, functionName, cfg)
}

type goSignature struct {
	params       string
	returns      string
	receiverType string
}

type goParam struct {
	name     string
	typeName string
}

func renderGoHarness(source, functionName string) (string, error) {
	sig, err := parseGoSignature(source, functionName)
	if err != nil {
		return "", err
	}
	params, err := parseGoParams(sig.params)
	if err != nil {
		return "", err
	}
	returns, err := parseGoReturns(sig.returns)
	if err != nil {
		return "", err
	}

	bindings := buildGoBindings(params)

	argNames := make([]string, len(params))
	for i, p := range params {
		argNames[i] = p.name
	}
	argList := strings.Join(argNames, ", ")

	invokerSetup := ""
	invokeExpr := fmt.Sprintf("%s(%s)", functionName, argList)
	if sig.receiverType != "" {
		if strings.HasPrefix(sig.receiverType, "*") {
			invokerSetup = fmt.Sprintf("\tsolver := &%s{}", strings.TrimPrefix(sig.receiverType, "*"))
		} else {
			invokerSetup = fmt.Sprintf("\tsolver := %s{}", sig.receiverType)
		}
		invokeExpr = fmt.Sprintf("solver.%s(%s)", functionName, argList)
	}

	callBlock, err := buildGoCallBlock(invokeExpr, returns)
	if err != nil {
		return "", err
	}

	return harness.Render(harness.Golang, map[string]string{
		harness.TokenSourceCode:    source,
		harness.TokenFunctionName:  functionName,
		harness.TokenParamBindings: strings.TrimRight(strings.Join(bindings, "\n"), "\n"),
		harness.TokenInvokerSetup:  invokerSetup,
		harness.TokenCall:          callBlock,
	})
}

func buildGoBindings(params []goParam) []string {
	var lines []string
	for _, p := range params {
		switch {
		case isGoListNode(p.typeName):
			lines = append(lines, goListBinding(p)...)
		case isGoTreeNode(p.typeName):
			lines = append(lines, goRefBinding(p, "[]interface{}", "_arr", "buildTree", "TreeNode")...)
		case isGoGraphNode(p.typeName):
			lines = append(lines, goRefBinding(p, "[][]int", "_adj", "buildGraph", "Node")...)
		default:
			lines = append(lines,
				fmt.Sprintf("\traw_%s, ok := input[%q]", p.name, p.name),
				fmt.Sprintf("\tif !ok { return nil, fmt.Errorf(\"missing parameter: %s\") }", p.name),
				fmt.Sprintf("\tvar %s %s", p.name, p.typeName),
				fmt.Sprintf("\tif err := json.Unmarshal(raw_%s, &%s); err != nil {", p.name, p.name),
				fmt.Sprintf("\t\treturn nil, fmt.Errorf(\"invalid parameter %s: %%w\", err)", p.name),
				"\t}",
				"",
			)
		}
	}
	return lines
}

// goListBinding decodes the value array plus the optional sibling "pos" cycle
// index, then builds the list. Non-pointer declarations get a dereferenced
// copy of the head node.
func goListBinding(p goParam) []string {
	lines := []string{
		fmt.Sprintf("\traw_%s, ok := input[%q]", p.name, p.name),
		fmt.Sprintf("\tif !ok { return nil, fmt.Errorf(\"missing parameter: %s\") }", p.name),
		fmt.Sprintf("\tvar %s_arr []int", p.name),
		fmt.Sprintf("\tif err := json.Unmarshal(raw_%s, &%s_arr); err != nil {", p.name, p.name),
		fmt.Sprintf("\t\treturn nil, fmt.Errorf(\"invalid parameter %s: %%w\", err)", p.name),
		"\t}",
		fmt.Sprintf("\tpos_%s := -1", p.name),
		fmt.Sprintf("\tif rawPos_%s, ok := input[\"pos\"]; ok {", p.name),
		fmt.Sprintf("\t\tif err := json.Unmarshal(rawPos_%s, &pos_%s); err != nil {", p.name, p.name),
		"\t\t\treturn nil, fmt.Errorf(\"invalid parameter pos: %w\", err)",
		"\t\t}",
		"\t}",
	}
	if isGoPointer(p.typeName) {
		lines = append(lines,
			fmt.Sprintf("\t%s := buildLinkedList(%s_arr, pos_%s)", p.name, p.name, p.name),
			"",
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("\ttmp_%s := buildLinkedList(%s_arr, pos_%s)", p.name, p.name, p.name),
			fmt.Sprintf("\tvar %s ListNode", p.name),
			fmt.Sprintf("\tif tmp_%s != nil {", p.name),
			fmt.Sprintf("\t\t%s = *tmp_%s", p.name, p.name),
			"\t}",
			"",
		)
	}
	return lines
}

func goRefBinding(p goParam, decodeType, suffix, builder, valueType string) []string {
	lines := []string{
		fmt.Sprintf("\traw_%s, ok := input[%q]", p.name, p.name),
		fmt.Sprintf("\tif !ok { return nil, fmt.Errorf(\"missing parameter: %s\") }", p.name),
		fmt.Sprintf("\tvar %s%s %s", p.name, suffix, decodeType),
		fmt.Sprintf("\tif err := json.Unmarshal(raw_%s, &%s%s); err != nil {", p.name, p.name, suffix),
		fmt.Sprintf("\t\treturn nil, fmt.Errorf(\"invalid parameter %s: %%w\", err)", p.name),
		"\t}",
	}
	if isGoPointer(p.typeName) {
		lines = append(lines,
			fmt.Sprintf("\t%s := %s(%s%s)", p.name, builder, p.name, suffix),
			"",
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("\ttmp_%s := %s(%s%s)", p.name, builder, p.name, suffix),
			fmt.Sprintf("\tvar %s %s", p.name, valueType),
			fmt.Sprintf("\tif tmp_%s != nil {", p.name),
			fmt.Sprintf("\t\t%s = *tmp_%s", p.name, p.name),
			"\t}",
			"",
		)
	}
	return lines
}

func buildGoCallBlock(invokeExpr string, returns []string) (string, error) {
	switch {
	case len(returns) == 0:
		return fmt.Sprintf("\t%s\n\treturn nil, nil", invokeExpr), nil
	case len(returns) == 1 && returns[0] == "error":
		return fmt.Sprintf("\terr := %s\n\tif err != nil { return nil, err }\n\treturn nil, nil", invokeExpr), nil
	case len(returns) == 1:
		return fmt.Sprintf("\tresult := %s\n\treturn autoConvertOutput(result), nil", invokeExpr), nil
	case len(returns) == 2 && returns[1] == "error":
		return fmt.Sprintf("\tresult, err := %s\n\tif err != nil { return nil, err }\n\treturn autoConvertOutput(result), nil", invokeExpr), nil
	default:
		return "", &CompileError{
			Message: "Unsupported Go return signature. Use no return, single return, error, or (T, error).",
		}
	}
}

func parseGoSignature(source, functionName string) (goSignature, error) {
	escaped := regexp.QuoteMeta(functionName)
	methodPattern := regexp.MustCompile(
		`(?s)func\s*\(\s*([^)]*?)\s*\)\s*` + escaped + `\s*\((.*?)\)\s*(\([^)]*\)|[^\s{]+)?\s*\{`)
	functionPattern := regexp.MustCompile(
		`(?s)func\s+` + escaped + `\s*\((.*?)\)\s*(\([^)]*\)|[^\s{]+)?\s*\{`)

	if m := methodPattern.FindStringSubmatch(source); m != nil {
		receiver, err := goReceiverType(m[1])
		if err != nil {
			return goSignature{}, err
		}
		return goSignature{
			params:       strings.TrimSpace(m[2]),
			returns:      strings.TrimSpace(m[3]),
			receiverType: receiver,
		}, nil
	}

	if m := functionPattern.FindStringSubmatch(source); m != nil {
		return goSignature{
			params:  strings.TrimSpace(m[1]),
			returns: strings.TrimSpace(m[2]),
		}, nil
	}

	return goSignature{}, &CompileError{
		Message: fmt.Sprintf("Could not parse Go function '%s' signature", functionName),
	}
}

func goReceiverType(receiverDecl string) (string, error) {
	receiverDecl = strings.TrimSpace(receiverDecl)
	if receiverDecl == "" {
		return "", &CompileError{Message: "Invalid Go method receiver"}
	}
	parts := strings.Fields(receiverDecl)
	return parts[len(parts)-1], nil
}

func parseGoParams(paramsStr string) ([]goParam, error) {
	if strings.TrimSpace(paramsStr) == "" {
		return nil, nil
	}

	// Names in a shared-type group ("a, b int") arrive as bare segments and
	// borrow the type from the first typed segment that follows.
	var params []goParam
	var pending []string
	for _, segment := range splitTopLevel(paramsStr) {
		piece := strings.TrimSpace(segment)
		if piece == "" {
			continue
		}

		idx := strings.LastIndex(piece, " ")
		if idx < 0 {
			if !isGoIdentifier(piece) {
				return nil, &CompileError{Message: fmt.Sprintf("Unsupported Go parameter: '%s'", piece)}
			}
			pending = append(pending, piece)
			continue
		}

		name, typePart := strings.TrimSpace(piece[:idx]), strings.TrimSpace(piece[idx+1:])
		if name != "_" && !isGoIdentifier(name) || typePart == "" {
			return nil, &CompileError{Message: fmt.Sprintf("Could not parse Go parameter: '%s'", piece)}
		}

		for _, n := range append(pending, name) {
			if n == "_" {
				return nil, &CompileError{Message: "Blank identifier '_' is not supported as input parameter"}
			}
			params = append(params, goParam{name: n, typeName: typePart})
		}
		pending = nil
	}
	if len(pending) > 0 {
		return nil, &CompileError{Message: fmt.Sprintf("Could not parse Go parameter list: '%s'", paramsStr)}
	}
	if len(params) == 0 {
		return nil, &CompileError{Message: fmt.Sprintf("Invalid Go parameter list: '%s'", paramsStr)}
	}
	return params, nil
}

func parseGoReturns(returnsStr string) ([]string, error) {
	raw := strings.TrimSpace(returnsStr)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		if inner == "" {
			return nil, nil
		}
		var returns []string
		for _, part := range splitTopLevel(inner) {
			t, err := goReturnType(part)
			if err != nil {
				return nil, err
			}
			returns = append(returns, t)
		}
		return returns, nil
	}

	t, err := goReturnType(raw)
	if err != nil {
		return nil, err
	}
	return []string{t}, nil
}

// goReturnType strips a named return, keeping the type.
func goReturnType(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", &CompileError{Message: "Invalid Go return type"}
	}
	if idx := strings.LastIndex(token, " "); idx >= 0 {
		return strings.TrimSpace(token[idx+1:]), nil
	}
	return token, nil
}

func isGoIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func isGoListNode(typeName string) bool {
	n := normalizeType(typeName)
	return n == "*ListNode" || n == "ListNode"
}

func isGoTreeNode(typeName string) bool {
	n := normalizeType(typeName)
	return n == "*TreeNode" || n == "TreeNode"
}

func isGoGraphNode(typeName string) bool {
	n := normalizeType(typeName)
	return n == "*Node" || n == "Node"
}

func isGoPointer(typeName string) bool {
	return strings.HasPrefix(normalizeType(typeName), "*")
}

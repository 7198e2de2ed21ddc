package lang

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/openjudge/arbiter/internal/harness"
)

// The C harness has no JSON parser, so test inputs are framed as whitespace-
// delimited stdin: one scalar per line, arrays as a length line followed by
// the space-separated values. The result envelope is still a single JSON
// object because printing it needs only printf.

const cImage = "cpp-sandbox:latest"

func newC(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:   "c",
		image: cfg.image("c", cImage),
		compileCmd: []string{
			"gcc", "solution.c", "-O2", "-std=c11", "-o", "solution", "-lm",
		},
		runCmd: []string{"./solution"},
		render: func(source, functionName string) (map[string]string, error) {
			rendered, err := renderCHarness(source, functionName)
			if err != nil {
				return nil, err
			}
			return map[string]string{"solution.c": rendered}, nil
		},
		stdinPayload: cStdinPayload,
	}, source, functionName, cfg)
}

type cParam struct {
	typeName string
	name     string
}

func renderCHarness(source, functionName string) (string, error) {
	returnType, params, err := parseCSignature(source, functionName)
	if err != nil {
		return "", err
	}

	var decls, scans, cleanup []string
	var callArgs []string

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch p.typeName {
		case "int":
			decls = append(decls, fmt.Sprintf("int %s;", p.name))
			scans = append(scans, fmt.Sprintf(`scanf("%%d", &%s);`, p.name))
			callArgs = append(callArgs, p.name)
		case "long long":
			decls = append(decls, fmt.Sprintf("long long %s;", p.name))
			scans = append(scans, fmt.Sprintf(`scanf("%%lld", &%s);`, p.name))
			callArgs = append(callArgs, p.name)
		case "double":
			decls = append(decls, fmt.Sprintf("double %s;", p.name))
			scans = append(scans, fmt.Sprintf(`scanf("%%lf", &%s);`, p.name))
			callArgs = append(callArgs, p.name)
		case "int*":
			size := p.name + "Size"
			// An int parameter right after the array is its length.
			if i+1 < len(params) && params[i+1].typeName == "int" {
				size = params[i+1].name
				i++
			}
			decls = append(decls,
				fmt.Sprintf("int %s;", size),
				fmt.Sprintf("int* %s;", p.name))
			scans = append(scans,
				fmt.Sprintf(`scanf("%%d", &%s);`, size),
				fmt.Sprintf("%s = (int*)malloc(sizeof(int) * %s);", p.name, size),
				fmt.Sprintf(`for (int i = 0; i < %s; i++) scanf("%%d", &%s[i]);`, size, p.name))
			callArgs = append(callArgs, p.name, size)
			cleanup = append(cleanup, fmt.Sprintf("free(%s);", p.name))
		default:
			return "", &CompileError{Message: fmt.Sprintf("Unsupported C type: %s", p.typeName)}
		}
	}

	var outputPrint string
	switch returnType {
	case "int":
		outputPrint = `printf("{\"result\": %d}\n", result);`
	case "long long":
		outputPrint = `printf("{\"result\": %lld}\n", result);`
	case "double":
		outputPrint = `printf("{\"result\": %f}\n", result);`
	default:
		return "", &CompileError{Message: fmt.Sprintf("Unsupported C return type: %s", returnType)}
	}

	functionCall := fmt.Sprintf("%s result = %s(%s);", returnType, functionName, strings.Join(callArgs, ", "))

	return harness.Render(harness.C, map[string]string{
		harness.TokenSourceCode:   source,
		harness.TokenInputDecls:   strings.Join(decls, "\n    "),
		harness.TokenInputScan:    strings.Join(scans, "\n    "),
		harness.TokenFunctionCall: functionCall,
		harness.TokenOutputPrint:  outputPrint,
		harness.TokenCleanup:      strings.Join(cleanup, "\n    "),
	})
}

var cSignaturePattern = `([a-zA-Z_][a-zA-Z0-9_ \*]*)\s+%s\s*\((.*?)\)`

func parseCSignature(source, functionName string) (string, []cParam, error) {
	pattern := regexp.MustCompile(fmt.Sprintf(cSignaturePattern, regexp.QuoteMeta(functionName)))
	m := pattern.FindStringSubmatch(source)
	if m == nil {
		return "", nil, &CompileError{Message: "Could not parse function signature"}
	}

	returnType := strings.TrimSpace(m[1])
	paramsStr := strings.TrimSpace(m[2])

	var params []cParam
	if paramsStr != "" {
		for _, piece := range splitTopLevel(paramsStr) {
			parts := strings.Fields(piece)
			if len(parts) < 2 {
				return "", nil, &CompileError{Message: fmt.Sprintf("Could not parse C parameter: '%s'", piece)}
			}
			name := parts[len(parts)-1]
			typeName := strings.Join(parts[:len(parts)-1], " ")
			// Pointer stars can stick to the name
			for strings.HasPrefix(name, "*") {
				name = name[1:]
				typeName += "*"
			}
			params = append(params, cParam{typeName: normalizeCType(typeName), name: name})
		}
	}
	return returnType, params, nil
}

// normalizeCType joins the star to the base type ("int *" → "int*").
func normalizeCType(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	typeName = strings.ReplaceAll(typeName, " *", "*")
	return typeName
}

// cStdinPayload frames the ordered input values for scanf. Only numeric
// scalars and numeric arrays exist in the C binding table.
func cStdinPayload(_ string, input json.RawMessage) (string, error) {
	fields, err := orderedFields(input)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, field := range fields {
		trimmed := strings.TrimSpace(string(field.Value))
		if strings.HasPrefix(trimmed, "[") {
			var values []json.Number
			if err := json.Unmarshal(field.Value, &values); err != nil {
				return "", fmt.Errorf("parameter %q is not a numeric array", field.Key)
			}
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = v.String()
			}
			lines = append(lines, fmt.Sprintf("%d", len(values)), strings.Join(parts, " "))
			continue
		}

		var value json.Number
		if err := json.Unmarshal(field.Value, &value); err != nil {
			return "", fmt.Errorf("parameter %q is not numeric", field.Key)
		}
		lines = append(lines, value.String())
	}
	return strings.Join(lines, "\n"), nil
}

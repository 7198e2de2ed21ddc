package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openjudge/arbiter/internal/harness"
)

// Rust has no runtime reflection either, so it follows the signature-
// extraction strategy. The sandbox image pre-stages a compiled serde_json
// under /opt/libs the same way the JVM image stages its jars.

const rustImage = "rust-sandbox:latest"

func newRust(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:   "rust",
		image: cfg.image("rust", rustImage),
		compileCmd: []string{
			"rustc", "-O", "--edition", "2021",
			"--extern", "serde_json=/opt/libs/libserde_json.rlib",
			"-L", "/opt/libs",
			"main.rs", "-o", "main",
		},
		runCmd: []string{"./main"},
		render: func(source, functionName string) (map[string]string, error) {
			rendered, err := renderRustHarness(source, functionName)
			if err != nil {
				return nil, err
			}
			return map[string]string{"main.rs": rendered}, nil
		},
	}, source, functionName, cfg)
}

type rustParam struct {
	name     string
	typeName string
}

func renderRustHarness(source, functionName string) (string, error) {
	params, returnType, err := parseRustSignature(source, functionName)
	if err != nil {
		return "", err
	}

	var bindings []string
	var argNames []string
	for _, p := range params {
		binding, err := rustBinding(p)
		if err != nil {
			return "", err
		}
		bindings = append(bindings, binding...)
		argNames = append(argNames, p.name)
	}

	// Associated functions on a Solution impl are called through the type.
	callName := functionName
	if regexp.MustCompile(`impl\s+Solution`).MatchString(source) {
		callName = "Solution::" + functionName
	}

	callBlock, err := rustCallBlock(callName, argNames, returnType)
	if err != nil {
		return "", err
	}

	return harness.Render(harness.Rust, map[string]string{
		harness.TokenSourceCode:    source,
		harness.TokenFunctionName:  strings.TrimPrefix(functionName, "Solution::"),
		harness.TokenParamBindings: strings.Join(bindings, "\n"),
		harness.TokenCall:          callBlock,
	})
}

func rustBinding(p rustParam) ([]string, error) {
	get := func(expr string) []string {
		return []string{fmt.Sprintf("    let %s = %s;", p.name, expr)}
	}
	missing := fmt.Sprintf(`.ok_or_else(|| format!("invalid parameter {}", %q))?`, p.name)

	switch normalizeType(p.typeName) {
	case "i32":
		return get(fmt.Sprintf(`input[%q].as_i64()%s as i32`, p.name, missing)), nil
	case "i64":
		return get(fmt.Sprintf(`input[%q].as_i64()%s`, p.name, missing)), nil
	case "f64":
		return get(fmt.Sprintf(`input[%q].as_f64()%s`, p.name, missing)), nil
	case "bool":
		return get(fmt.Sprintf(`input[%q].as_bool()%s`, p.name, missing)), nil
	case "String":
		return get(fmt.Sprintf(`input[%q].as_str()%s.to_string()`, p.name, missing)), nil
	case "Vec<i32>":
		return []string{
			fmt.Sprintf(`    let %s: Vec<i32> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
		}, nil
	case "Vec<i64>":
		return []string{
			fmt.Sprintf(`    let %s: Vec<i64> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
		}, nil
	case "Vec<Vec<i32>>":
		return []string{
			fmt.Sprintf(`    let %s: Vec<Vec<i32>> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
		}, nil
	case "Vec<Vec<char>>":
		return []string{
			fmt.Sprintf(`    let %s_raw: Vec<Vec<String>> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
			fmt.Sprintf(`    let %s: Vec<Vec<char>> = %s_raw`, p.name, p.name),
			`        .iter()`,
			`        .map(|row| row.iter().filter_map(|s| s.chars().next()).collect())`,
			`        .collect();`,
		}, nil
	case "Vec<String>":
		return []string{
			fmt.Sprintf(`    let %s: Vec<String> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
		}, nil
	case "Option<Box<ListNode>>":
		return []string{
			fmt.Sprintf(`    let %s_vals: Vec<i32> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
			fmt.Sprintf(`    let %s = build_list(&%s_vals);`, p.name, p.name),
		}, nil
	case "Option<Rc<RefCell<TreeNode>>>":
		return []string{
			fmt.Sprintf(`    let %s_vals: Vec<Value> = serde_json::from_value(input[%q].clone())`, p.name, p.name),
			fmt.Sprintf(`        .map_err(|_| format!("invalid parameter {}", %q))?;`, p.name),
			fmt.Sprintf(`    let %s = build_tree(&%s_vals);`, p.name, p.name),
		}, nil
	default:
		return nil, &CompileError{Message: fmt.Sprintf("Unsupported Rust type: %s", p.typeName)}
	}
}

func rustCallBlock(functionName string, argNames []string, returnType string) (string, error) {
	call := fmt.Sprintf("%s(%s)", functionName, strings.Join(argNames, ", "))
	switch normalizeType(returnType) {
	case "":
		return fmt.Sprintf("    %s;\n    Ok(Value::Null)", call), nil
	case "Option<Box<ListNode>>":
		return fmt.Sprintf("    let result = %s;\n    Ok(json!(list_to_vec(&result)))", call), nil
	case "Option<Rc<RefCell<TreeNode>>>":
		return fmt.Sprintf("    let result = %s;\n    Ok(json!(tree_to_vec(&result)))", call), nil
	case "i32", "i64", "f64", "bool", "String",
		"Vec<i32>", "Vec<i64>", "Vec<Vec<i32>>", "Vec<String>", "Vec<f64>", "Vec<bool>":
		return fmt.Sprintf("    let result = %s;\n    Ok(json!(result))", call), nil
	case "Vec<Vec<char>>":
		return fmt.Sprintf(
			"    let result = %s;\n"+
				"    let rows: Vec<Vec<String>> = result.iter().map(|row| row.iter().map(|c| c.to_string()).collect()).collect();\n"+
				"    Ok(json!(rows))", call), nil
	default:
		return "", &CompileError{Message: fmt.Sprintf("Unsupported Rust return type: %s", returnType)}
	}
}

func parseRustSignature(source, functionName string) ([]rustParam, string, error) {
	pattern := regexp.MustCompile(
		`(?s)fn\s+` + regexp.QuoteMeta(functionName) + `\s*\((.*?)\)\s*(?:->\s*([^\{]+))?\{`)
	m := pattern.FindStringSubmatch(source)
	if m == nil {
		return nil, "", &CompileError{
			Message: fmt.Sprintf("Could not parse Rust function '%s' signature", functionName),
		}
	}

	paramsStr := strings.TrimSpace(m[1])
	returnType := strings.TrimSpace(m[2])

	var params []rustParam
	if paramsStr != "" {
		for _, piece := range splitTopLevel(paramsStr) {
			piece = strings.TrimSpace(piece)
			if piece == "" || piece == "&self" || piece == "self" || piece == "&mut self" {
				continue
			}
			idx := strings.Index(piece, ":")
			if idx < 0 {
				return nil, "", &CompileError{Message: fmt.Sprintf("Could not parse Rust parameter: '%s'", piece)}
			}
			name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(piece[:idx]), "mut "))
			typeName := strings.TrimSpace(piece[idx+1:])
			params = append(params, rustParam{name: name, typeName: typeName})
		}
	}
	return params, returnType, nil
}

package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openjudge/arbiter/internal/harness"
)

const cppImage = "cpp-sandbox:latest"

func newCpp(source, functionName string, cfg Config) Executor {
	return newDockerExecutor(langSpec{
		tag:   "cpp",
		image: cfg.image("cpp", cppImage),
		compileCmd: []string{
			"g++", "solution.cpp", "-O2", "-std=c++20", "-o", "solution",
		},
		runCmd: []string{"./solution"},
		render: func(source, functionName string) (map[string]string, error) {
			rendered, err := renderCppHarness(source, functionName)
			if err != nil {
				return nil, err
			}
			return map[string]string{"solution.cpp": rendered}, nil
		},
	}, source, functionName, cfg)
}

type cppParam struct {
	typeName string
	name     string
}

func renderCppHarness(source, functionName string) (string, error) {
	returnType, params, err := parseCppSignature(source, functionName)
	if err != nil {
		return "", err
	}

	var deser []string
	var argNames []string

	for _, p := range params {
		cleanType := cleanCppType(p.typeName)
		switch cleanType {
		case "int":
			deser = append(deser, fmt.Sprintf(`int %s = j["%s"];`, p.name, p.name))
		case "long long":
			deser = append(deser, fmt.Sprintf(`long long %s = j["%s"];`, p.name, p.name))
		case "double":
			deser = append(deser, fmt.Sprintf(`double %s = j["%s"];`, p.name, p.name))
		case "bool":
			deser = append(deser, fmt.Sprintf(`bool %s = j["%s"];`, p.name, p.name))
		case "string":
			deser = append(deser, fmt.Sprintf(`string %s = j["%s"];`, p.name, p.name))
		case "vector<int>":
			deser = append(deser, fmt.Sprintf(`vector<int> %s = j["%s"].get<vector<int>>();`, p.name, p.name))
		case "vector<vector<int>>":
			deser = append(deser, fmt.Sprintf(`vector<vector<int>> %s = j["%s"].get<vector<vector<int>>>();`, p.name, p.name))
		case "vector<vector<char>>":
			deser = append(deser,
				fmt.Sprintf(`vector<vector<char>> %s;`, p.name),
				fmt.Sprintf(`for (auto& row : j["%s"]) {`, p.name),
				"    vector<char> chars;",
				`    for (auto& el : row) chars.push_back(el.get<string>()[0]);`,
				fmt.Sprintf(`    %s.push_back(chars);`, p.name),
				"}")
		case "vector<string>":
			deser = append(deser, fmt.Sprintf(`vector<string> %s = j["%s"].get<vector<string>>();`, p.name, p.name))
		case "ListNode*":
			deser = append(deser,
				fmt.Sprintf(`vector<int> %s_vec = j["%s"].get<vector<int>>();`, p.name, p.name),
				fmt.Sprintf(`int %s_pos = j.contains("pos") ? j["pos"].get<int>() : -1;`, p.name),
				fmt.Sprintf(`ListNode* %s = buildLinkedList(%s_vec, %s_pos);`, p.name, p.name, p.name))
		case "TreeNode*":
			deser = append(deser,
				fmt.Sprintf(`vector<optional<int>> %s_vec = parseNullableInts(j["%s"]);`, p.name, p.name),
				fmt.Sprintf(`TreeNode* %s = buildTree(%s_vec);`, p.name, p.name))
		default:
			return "", &CompileError{Message: fmt.Sprintf("Unsupported type: %s", cleanType)}
		}
		argNames = append(argNames, p.name)
	}

	callPrefix := "auto result = "
	returnSer := "output = result;"
	switch cleanCppType(returnType) {
	case "void":
		callPrefix = ""
		returnSer = "output = nullptr;"
	case "ListNode*":
		returnSer = "output = serializeLinkedList(result);"
	case "TreeNode*":
		returnSer = "output = serializeTree(result);"
	}

	return harness.Render(harness.Cpp, map[string]string{
		harness.TokenSourceCode:   source,
		harness.TokenFunctionName: functionName,
		harness.TokenParamDeser:   strings.Join(deser, "\n        "),
		harness.TokenCallPrefix:   callPrefix,
		harness.TokenArgList:      strings.Join(argNames, ", "),
		harness.TokenReturnSer:    returnSer,
	})
}

func parseCppSignature(source, functionName string) (string, []cppParam, error) {
	pattern := regexp.MustCompile(
		`(?s)([^\s]+(?:\s*\*?)?)\s+` + regexp.QuoteMeta(functionName) + `\s*\((.*?)\)`)
	m := pattern.FindStringSubmatch(source)
	if m == nil {
		return "", nil, &CompileError{Message: "Could not parse function signature"}
	}

	returnType := strings.TrimSpace(m[1])
	paramsStr := strings.TrimSpace(m[2])

	var params []cppParam
	if paramsStr != "" {
		for _, piece := range splitTopLevel(paramsStr) {
			parts := strings.Fields(piece)
			if len(parts) < 2 {
				return "", nil, &CompileError{Message: fmt.Sprintf("Could not parse C++ parameter: '%s'", piece)}
			}
			name := strings.NewReplacer("&", "", "*", "").Replace(parts[len(parts)-1])
			typeName := strings.Join(parts[:len(parts)-1], " ")
			// Stars stuck to the name belong to the type
			if strings.HasPrefix(parts[len(parts)-1], "*") {
				typeName += "*"
			}
			params = append(params, cppParam{typeName: typeName, name: name})
		}
	}
	return returnType, params, nil
}

// cleanCppType strips const qualifiers, references, and whitespace so the
// binding table matches both "vector<int>& nums" and "const vector<int> &nums".
func cleanCppType(typeName string) string {
	t := strings.ReplaceAll(typeName, "const", "")
	t = strings.ReplaceAll(t, "&", "")
	t = normalizeType(t)
	// Re-expand the one multi-word scalar
	if t == "longlong" {
		return "long long"
	}
	return t
}

package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCppSignature(t *testing.T) {
	returnType, params, err := parseCppSignature(
		"int add(int a, int b) { return a + b; }", "add")
	if err != nil {
		t.Fatalf("parseCppSignature() error = %v", err)
	}
	if returnType != "int" {
		t.Errorf("returnType = %q", returnType)
	}
	if len(params) != 2 || params[0].name != "a" || params[1].name != "b" {
		t.Errorf("params = %+v", params)
	}
}

func TestParseCppSignatureReferences(t *testing.T) {
	_, params, err := parseCppSignature(
		"int maxSum(vector<int>& nums) { return 0; }", "maxSum")
	if err != nil {
		t.Fatalf("parseCppSignature() error = %v", err)
	}
	if params[0].name != "nums" {
		t.Errorf("params[0].name = %q", params[0].name)
	}
	if cleanCppType(params[0].typeName) != "vector<int>" {
		t.Errorf("clean type = %q", cleanCppType(params[0].typeName))
	}
}

func TestCleanCppType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"const vector<int> &", "vector<int>"},
		{"vector<vector<int>>", "vector<vector<int>>"},
		{"long long", "long long"},
		{"ListNode *", "ListNode*"},
		{"const string&", "string"},
	}
	for _, tt := range tests {
		if got := cleanCppType(tt.input); got != tt.want {
			t.Errorf("cleanCppType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderCppHarnessScalars(t *testing.T) {
	rendered, err := renderCppHarness("int add(int a, int b) { return a + b; }", "add")
	if err != nil {
		t.Fatalf("renderCppHarness() error = %v", err)
	}

	for _, want := range []string{
		`int a = j["a"];`,
		`int b = j["b"];`,
		"auto result = add(a, b);",
		"output = result;",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered harness missing %q", want)
		}
	}
	if strings.Contains(rendered, "_PLACEHOLDER__") {
		t.Error("rendered harness still contains a placeholder")
	}
}

func TestRenderCppHarnessLinkedList(t *testing.T) {
	source := "ListNode* reverseList(ListNode* head) { return head; }"
	rendered, err := renderCppHarness(source, "reverseList")
	if err != nil {
		t.Fatalf("renderCppHarness() error = %v", err)
	}

	for _, want := range []string{
		`vector<int> head_vec = j["head"].get<vector<int>>();`,
		"ListNode* head = buildLinkedList(head_vec, head_pos);",
		"output = serializeLinkedList(result);",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered harness missing %q", want)
		}
	}
}

func TestRenderCppHarnessTree(t *testing.T) {
	source := "TreeNode* invertTree(TreeNode* root) { return root; }"
	rendered, err := renderCppHarness(source, "invertTree")
	if err != nil {
		t.Fatalf("renderCppHarness() error = %v", err)
	}

	for _, want := range []string{
		`vector<optional<int>> root_vec = parseNullableInts(j["root"]);`,
		"TreeNode* root = buildTree(root_vec);",
		"output = serializeTree(result);",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered harness missing %q", want)
		}
	}
}

func TestRenderCppHarnessUnsupportedType(t *testing.T) {
	_, err := renderCppHarness("int f(set<int> s) { return 0; }", "f")
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected *CompileError, got %v", err)
	}
	if !strings.Contains(compileErr.Message, "set<int>") {
		t.Errorf("message should quote the offending type: %s", compileErr.Message)
	}
}

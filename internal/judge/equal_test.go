package judge

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture %q: %v", raw, err)
	}
	return v
}

func TestJSONEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"equal ints", "5", "5", true},
		{"int vs float same value", "5", "5.0", true},
		{"different numbers", "5", "6", false},
		{"no tolerance", "0.1", "0.10000001", false},
		{"strings", `"abc"`, `"abc"`, true},
		{"string vs number", `"5"`, "5", false},
		{"bools", "true", "true", true},
		{"nulls", "null", "null", true},
		{"null vs zero", "null", "0", false},
		{"arrays equal", "[1, 2, 3]", "[1, 2, 3]", true},
		{"arrays order-sensitive", "[1, 2, 3]", "[3, 2, 1]", false},
		{"arrays length", "[1, 2]", "[1, 2, 3]", false},
		{"nested arrays", "[[1], [2, 3]]", "[[1], [2, 3]]", true},
		{"objects equal", `{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`, true},
		{"objects key set", `{"a": 1}`, `{"a": 1, "b": 2}`, false},
		{"objects value", `{"a": 1}`, `{"a": 2}`, false},
		{"mixed nesting", `{"a": [1, {"b": null}]}`, `{"a": [1, {"b": null}]}`, true},
		{"array vs object", "[]", "{}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jsonEqual(decode(t, tt.a), decode(t, tt.b))
			if got != tt.want {
				t.Errorf("jsonEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric
			if rev := jsonEqual(decode(t, tt.b), decode(t, tt.a)); rev != got {
				t.Errorf("jsonEqual is not symmetric for (%s, %s)", tt.a, tt.b)
			}
		})
	}
}

func TestDecodeExpected(t *testing.T) {
	v, err := decodeExpected(json.RawMessage(`[3, 2, 1]`))
	if err != nil {
		t.Fatalf("decodeExpected() error = %v", err)
	}
	if !jsonEqual(v, decode(t, "[3, 2, 1]")) {
		t.Errorf("decodeExpected() = %v", v)
	}

	// Absent expected output compares as null
	v, err = decodeExpected(nil)
	if err != nil {
		t.Fatalf("decodeExpected(nil) error = %v", err)
	}
	if v != nil {
		t.Errorf("decodeExpected(nil) = %v, want nil", v)
	}
}

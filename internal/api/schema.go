package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// requestSchema is the boundary contract for POST /execute. Everything the
// pipeline assumes about sizes and shapes is enforced here, before any
// sandbox resources are touched.
const requestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["language", "source_code", "function_name", "test_cases"],
  "additionalProperties": false,
  "properties": {
    "language": {
      "type": "string",
      "enum": ["python", "javascript", "typescript", "c", "cpp", "java", "kotlin", "go", "rust", "csharp"]
    },
    "source_code": {
      "type": "string",
      "minLength": 1,
      "maxLength": 5000
    },
    "function_name": {
      "type": "string",
      "minLength": 1,
      "maxLength": 100
    },
    "test_cases": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {
        "type": "object",
        "required": ["input"],
        "additionalProperties": false,
        "properties": {
          "input": {"type": "object"},
          "expected_output": {}
        }
      }
    }
  }
}`

type requestValidator struct {
	schema *jsonschema.Schema
}

func newRequestValidator() (*requestValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(requestSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse request schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("request.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("request.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	return &requestValidator{schema: schema}, nil
}

// ValidateRequest checks a raw request body against the embedded schema
// without needing a running server. The CLI validate command uses it.
func ValidateRequest(body []byte) error {
	v, err := newRequestValidator()
	if err != nil {
		return err
	}
	return v.Validate(body)
}

// Validate checks a raw request body against the schema. The returned error
// message is safe to hand back to the client.
func (v *requestValidator) Validate(body []byte) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %v", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("request validation failed: %v", err)
	}
	return nil
}

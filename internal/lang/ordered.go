package lang

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// orderedField is one key/value pair of a JSON object in document order.
// encoding/json maps lose order, and positional binding depends on it, so the
// walk goes through the token stream instead.
type orderedField struct {
	Key   string
	Value json.RawMessage
}

func orderedFields(raw json.RawMessage) ([]orderedField, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid input object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("input is not a JSON object")
	}

	var fields []orderedField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid input object: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("invalid input object key")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		fields = append(fields, orderedField{Key: key, Value: value})
	}
	return fields, nil
}

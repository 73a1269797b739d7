// File path: internal/wordgraph/parse.go
package wordgraph

import (
	"encoding/json"
	"fmt"
)

// ParseWords decodes an extracted JSON span into word entries. The span must
// be a JSON object carrying a "words" key; anything else is a schema failure
// rather than a parse failure.
func ParseWords(span string) ([]WordEntry, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(span), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: not a JSON object", ErrSchema)
	}
	if _, ok := obj["words"]; !ok {
		return nil, fmt.Errorf("%w: missing words key", ErrSchema)
	}

	var payload struct {
		Words []WordEntry `json:"words"`
	}
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return payload.Words, nil
}

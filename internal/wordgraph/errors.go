// File path: internal/wordgraph/errors.go
package wordgraph

import "errors"

// Every stage of the pipeline fails with one of these sentinels (wrapped with
// detail). None are retried; the request boundary maps all of them to a 500.
var (
	ErrConfiguration = errors.New("generation credential not configured")
	ErrGeneration    = errors.New("generation failed")
	ErrExtraction    = errors.New("could not find JSON in response")
	ErrParse         = errors.New("failed to parse JSON")
	ErrSchema        = errors.New("invalid JSON structure")
)

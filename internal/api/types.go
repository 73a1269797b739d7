// File path: internal/api/types.go
package api

// Pointer fields distinguish "absent" from explicit zero values; absent fields
// pick up the documented defaults.
type wordGraphRequest struct {
	Topic    *string `json:"topic"`
	NumWords *int    `json:"num_words"`
}

type dagRequest struct {
	Prompt *string `json:"prompt"`
}

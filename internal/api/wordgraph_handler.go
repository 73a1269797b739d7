// File path: internal/api/wordgraph_handler.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/wordgraph/backend/internal/common"
	"github.com/wordgraph/backend/internal/wordgraph"
)

// handleWordGraphGenerate runs the full pipeline for one request: prompt,
// generation, extraction, correlation, assembly. Any stage failure maps to a
// 500 with the error message; no partial graph is ever returned.
func (s *Server) handleWordGraphGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()

	var req wordGraphRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	topic := wordgraph.DefaultTopic
	if req.Topic != nil {
		topic = *req.Topic
	}
	numWords := wordgraph.DefaultNumWords
	if req.NumWords != nil {
		numWords = *req.NumWords
	}
	logger.Info("api: word graph request", "topic", topic, "num_words", numWords)

	text, err := s.generate(r.Context(), wordgraph.BuildPrompt(topic, numWords))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	span, err := wordgraph.ExtractJSON(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	entries, err := wordgraph.ParseWords(span)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: parsed word entries", "count", len(entries))

	graph := wordgraph.BuildGraph(entries, wordgraph.Correlate(entries))
	writeJSON(w, http.StatusOK, graph)
}

// generate invokes the provider under the configured deadline and normalizes
// the failure modes: missing credential, call failure, empty payload.
func (s *Server) generate(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil || s.cfg.APIKey == "" {
		return "", wordgraph.ErrConfiguration
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout)
	defer cancel()

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", wordgraph.ErrGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response", wordgraph.ErrGeneration)
	}
	return text, nil
}

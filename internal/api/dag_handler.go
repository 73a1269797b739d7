// File path: internal/api/dag_handler.go
package api

import (
	"net/http"

	"github.com/wordgraph/backend/internal/common"
	"github.com/wordgraph/backend/internal/wordgraph"
)

// handleDAGGenerate asks the model for an execution DAG and returns it with
// computed layered positions.
func (s *Server) handleDAGGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()

	var req dagRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	prompt := wordgraph.DefaultDAGPrompt
	if req.Prompt != nil {
		prompt = *req.Prompt
	}
	logger.Info("api: dag request", "prompt_length", len(prompt))

	text, err := s.generate(r.Context(), wordgraph.BuildDAGPrompt(prompt))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	span, err := wordgraph.ExtractJSON(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	dag, err := wordgraph.BuildDAG(span)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: dag generated", "nodes", len(dag.Nodes), "edges", len(dag.Edges))
	writeJSON(w, http.StatusOK, dag)
}

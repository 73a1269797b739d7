// File path: internal/wordgraph/types.go

// Package wordgraph turns generated concept entries into a node/edge payload
// for a graph-rendering client. Entries come from a text-generation model and
// are matched against each other by term mention to infer edges.
package wordgraph

// WordEntry is one generated concept after parsing. Terms are matched
// case-insensitively; nothing enforces uniqueness, duplicate terms stay
// distinct positional entries.
type WordEntry struct {
	Term            string   `json:"term"`
	Summary         string   `json:"summary"`
	Description     string   `json:"description"`
	RelatedConcepts []string `json:"related_concepts"`
	Examples        []string `json:"examples"`
}

// Correlation is an inferred directed relationship between two entries,
// identified by their positions in the generation result.
type Correlation struct {
	Source      int
	Target      int
	Explanation string
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type NodeData struct {
	Label         string   `json:"label"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	RelatedTopics []string `json:"relatedTopics"`
	Examples      []string `json:"examples"`
}

type GraphNode struct {
	ID             string   `json:"id"`
	Data           NodeData `json:"data"`
	Position       Position `json:"position"`
	Type           string   `json:"type"`
	SourcePosition string   `json:"sourcePosition"`
	TargetPosition string   `json:"targetPosition"`
}

type EdgeStyle struct {
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"strokeWidth"`
}

type EdgeData struct {
	Explanation string `json:"explanation"`
}

type GraphEdge struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Animated bool      `json:"animated"`
	Style    EdgeStyle `json:"style"`
	Data     EdgeData  `json:"data"`
}

// Graph is the success payload for the word-graph endpoint.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

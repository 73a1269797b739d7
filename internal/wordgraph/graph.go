// File path: internal/wordgraph/graph.go
package wordgraph

import "fmt"

const (
	nodeType        = "wordNode"
	nodeSpacing     = 250
	edgeStroke      = "#3b82f6"
	edgeStrokeWidth = 2
)

// BuildGraph shapes entries and correlations into the rendering payload.
// Node ids are positional ("node-<i>") and stable for the lifetime of one
// request; layout is a simple horizontal strip.
func BuildGraph(entries []WordEntry, correlations []Correlation) Graph {
	nodes := make([]GraphNode, 0, len(entries))
	for i, entry := range entries {
		nodes = append(nodes, GraphNode{
			ID: fmt.Sprintf("node-%d", i),
			Data: NodeData{
				Label:         entry.Term,
				Summary:       entry.Summary,
				Description:   entry.Description,
				RelatedTopics: entry.RelatedConcepts,
				Examples:      entry.Examples,
			},
			Position:       Position{X: float64(i * nodeSpacing), Y: 0},
			Type:           nodeType,
			SourcePosition: "right",
			TargetPosition: "left",
		})
	}

	edges := make([]GraphEdge, 0, len(correlations))
	for i, corr := range correlations {
		edges = append(edges, GraphEdge{
			ID:       fmt.Sprintf("edge-%d", i),
			Source:   fmt.Sprintf("node-%d", corr.Source),
			Target:   fmt.Sprintf("node-%d", corr.Target),
			Animated: true,
			Style:    EdgeStyle{Stroke: edgeStroke, StrokeWidth: edgeStrokeWidth},
			Data:     EdgeData{Explanation: corr.Explanation},
		})
	}

	return Graph{Nodes: nodes, Edges: edges}
}

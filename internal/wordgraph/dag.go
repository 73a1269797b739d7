// File path: internal/wordgraph/dag.go
package wordgraph

import (
	"encoding/json"
	"fmt"
)

const (
	dagLayerSpacing = 250
	dagRowSpacing   = 120
	dagNodeType     = "taskNode"
)

// DAGNode keeps the model's data object as-is; only id, type and position are
// interpreted here.
type DAGNode struct {
	ID       string                 `json:"id"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Position Position               `json:"position"`
	Type     string                 `json:"type"`
}

type DAGEdge struct {
	ID       string                 `json:"id"`
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Animated bool                   `json:"animated"`
	Style    map[string]interface{} `json:"style,omitempty"`
}

// DAG is the success payload for the DAG endpoint.
type DAG struct {
	Nodes []DAGNode `json:"nodes"`
	Edges []DAGEdge `json:"edges"`
}

// BuildDAG decodes an extracted JSON span into a DAG and computes layered
// positions. Edges naming unknown node ids are dropped. When the edge set
// contains a cycle the layout falls back to an index strip instead of failing
// the request.
func BuildDAG(span string) (DAG, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(span), &value); err != nil {
		return DAG{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, ok := value.(map[string]interface{}); !ok {
		return DAG{}, fmt.Errorf("%w: not a JSON object", ErrSchema)
	}

	var payload DAG
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return DAG{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	known := make(map[string]int, len(payload.Nodes))
	for i, node := range payload.Nodes {
		known[node.ID] = i
		if payload.Nodes[i].Type == "" {
			payload.Nodes[i].Type = dagNodeType
		}
	}

	edges := make([]DAGEdge, 0, len(payload.Edges))
	for i, edge := range payload.Edges {
		if _, ok := known[edge.Source]; !ok {
			continue
		}
		if _, ok := known[edge.Target]; !ok {
			continue
		}
		if edge.ID == "" {
			edge.ID = fmt.Sprintf("edge-%d", i)
		}
		edges = append(edges, edge)
	}
	payload.Edges = edges

	layoutDAG(payload.Nodes, edges, known)
	if payload.Nodes == nil {
		payload.Nodes = []DAGNode{}
	}
	return payload, nil
}

// layoutDAG assigns x by topological layer and y by row within the layer.
func layoutDAG(nodes []DAGNode, edges []DAGEdge, index map[string]int) {
	n := len(nodes)
	indegree := make([]int, n)
	succ := make([][]int, n)
	for _, edge := range edges {
		s := index[edge.Source]
		t := index[edge.Target]
		succ[s] = append(succ[s], t)
		indegree[t]++
	}

	layer := make([]int, n)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	processed := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range succ[cur] {
			if layer[cur]+1 > layer[next] {
				layer[next] = layer[cur] + 1
			}
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if processed < n {
		// Cycle: positions degrade to the index strip.
		for i := range nodes {
			nodes[i].Position = Position{X: float64(i * dagLayerSpacing), Y: 0}
		}
		return
	}

	rows := make(map[int]int)
	for i := range nodes {
		row := rows[layer[i]]
		rows[layer[i]] = row + 1
		nodes[i].Position = Position{
			X: float64(layer[i] * dagLayerSpacing),
			Y: float64(row * dagRowSpacing),
		}
	}
}

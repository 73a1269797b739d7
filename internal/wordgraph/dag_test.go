// File path: internal/wordgraph/dag_test.go
package wordgraph

import (
	"errors"
	"testing"
)

func TestBuildDAGLayeredPositions(t *testing.T) {
	span := `{
		"nodes": [
			{"id": "a", "data": {"label": "Load", "status": "pending"}},
			{"id": "b", "data": {"label": "Train"}},
			{"id": "c", "data": {"label": "Deploy"}}
		],
		"edges": [
			{"id": "e1", "source": "a", "target": "b"},
			{"id": "e2", "source": "b", "target": "c"}
		]
	}`
	dag, err := BuildDAG(span)
	if err != nil {
		t.Fatalf("build dag: %v", err)
	}
	if len(dag.Nodes) != 3 || len(dag.Edges) != 2 {
		t.Fatalf("unexpected shape: %d nodes, %d edges", len(dag.Nodes), len(dag.Edges))
	}
	if !(dag.Nodes[0].Position.X < dag.Nodes[1].Position.X && dag.Nodes[1].Position.X < dag.Nodes[2].Position.X) {
		t.Fatalf("expected increasing layers: %+v", dag.Nodes)
	}
	for _, node := range dag.Nodes {
		if node.Type != "taskNode" {
			t.Fatalf("expected default node type, got %q", node.Type)
		}
	}
}

func TestBuildDAGDropsUnknownEdgeEndpoints(t *testing.T) {
	span := `{
		"nodes": [{"id": "a"}, {"id": "b"}],
		"edges": [
			{"source": "a", "target": "b"},
			{"source": "a", "target": "ghost"},
			{"source": "ghost", "target": "b"}
		]
	}`
	dag, err := BuildDAG(span)
	if err != nil {
		t.Fatalf("build dag: %v", err)
	}
	if len(dag.Edges) != 1 {
		t.Fatalf("expected 1 edge after filtering, got %+v", dag.Edges)
	}
	if dag.Edges[0].Source != "a" || dag.Edges[0].Target != "b" {
		t.Fatalf("wrong edge kept: %+v", dag.Edges[0])
	}
}

func TestBuildDAGCycleFallsBackToStrip(t *testing.T) {
	span := `{
		"nodes": [{"id": "a"}, {"id": "b"}],
		"edges": [
			{"source": "a", "target": "b"},
			{"source": "b", "target": "a"}
		]
	}`
	dag, err := BuildDAG(span)
	if err != nil {
		t.Fatalf("build dag: %v", err)
	}
	if dag.Nodes[0].Position.X != 0 || dag.Nodes[1].Position.X != 250 {
		t.Fatalf("expected strip layout on cycle: %+v", dag.Nodes)
	}
}

func TestBuildDAGSharedLayerRows(t *testing.T) {
	span := `{
		"nodes": [{"id": "root"}, {"id": "left"}, {"id": "right"}],
		"edges": [
			{"source": "root", "target": "left"},
			{"source": "root", "target": "right"}
		]
	}`
	dag, err := BuildDAG(span)
	if err != nil {
		t.Fatalf("build dag: %v", err)
	}
	if dag.Nodes[1].Position.X != dag.Nodes[2].Position.X {
		t.Fatalf("siblings should share a layer: %+v", dag.Nodes)
	}
	if dag.Nodes[1].Position.Y == dag.Nodes[2].Position.Y {
		t.Fatalf("siblings should get distinct rows: %+v", dag.Nodes)
	}
}

func TestBuildDAGMalformed(t *testing.T) {
	if _, err := BuildDAG(`{"nodes": [`); !errors.Is(err, ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := BuildDAG(`[1, 2]`); !errors.Is(err, ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

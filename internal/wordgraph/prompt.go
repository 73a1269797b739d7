// File path: internal/wordgraph/prompt.go
package wordgraph

import "fmt"

const (
	DefaultTopic    = "Technology"
	DefaultNumWords = 5

	DefaultDAGPrompt = "Generate an execution DAG for a machine learning pipeline"
)

// BuildPrompt instructs the model to return numWords concept entries in the
// JSON shape ParseWords expects. numWords is passed through verbatim; the
// model is trusted to comply with the requested count.
func BuildPrompt(topic string, numWords int) string {
	return fmt.Sprintf(`Generate %d key concepts or terms related to %s.
For each term, provide:
1. A brief summary (1-2 sentences)
2. A detailed description (2-3 paragraphs)
3. 2-3 related concepts (IMPORTANT: make sure these are actual terms that could appear as other nodes)
4. 2-3 practical examples or use cases

Format the response as a JSON object with the following structure:
{
    "words": [
        {
            "term": "term name",
            "summary": "brief summary",
            "description": "detailed description",
            "related_concepts": ["concept1", "concept2"],
            "examples": ["example1", "example2"]
        }
    ]
}`, numWords, topic)
}

// BuildDAGPrompt instructs the model to emit a React Flow compatible DAG for
// the given prompt.
func BuildDAGPrompt(prompt string) string {
	return "You are a DAG generation assistant that outputs valid JSON. " +
		"Create a directed acyclic graph (DAG) for execution dependencies based on the following prompt. " +
		"The output should be a JSON object with 'nodes' and 'edges' arrays in a format compatible with React Flow. " +
		"Each node should have an 'id', 'data' object with 'label' and 'status' properties, and a 'type' field set to 'taskNode'. " +
		"Each edge should have an 'id', 'source', 'target', 'animated', and 'style' properties. " +
		"Every edge's source and target must refer to existing node ids and the graph must contain no cycles.\n\n" +
		prompt
}

package server

import (
	"encoding/json"

	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/run"
)

// Frame type tags on the WebSocket stream.
const (
	FrameArray  = "array"
	FrameGraph  = "graph"
	FrameStatus = "status"
)

// Frame is one message on the stream. Type names which payload field
// is set; Seq increases by one per published frame, so a client can
// detect the gap a late join may open.
type Frame struct {
	Type   string      `json:"type"`
	Seq    int64       `json:"seq"`
	Array  []Element   `json:"array,omitempty"`
	Graph  *GraphFrame `json:"graph,omitempty"`
	Status *Status     `json:"status,omitempty"`
}

// Element is one array cell of a sorting frame.
type Element struct {
	Value    int  `json:"value"`
	Compared bool `json:"compared,omitempty"`
	Swapped  bool `json:"swapped,omitempty"`
	Sorted   bool `json:"sorted,omitempty"`
}

// Node is one vertex of a traversal frame. Dist is null until the
// traversal relaxes the vertex.
type Node struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Current bool    `json:"current,omitempty"`
	InQueue bool    `json:"in_queue,omitempty"`
	Visited bool    `json:"visited,omitempty"`
	Dist    *int64  `json:"dist,omitempty"`
}

// Edge is one directed arc of a traversal frame.
type Edge struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Weight      int64  `json:"weight"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// GraphFrame is the full picture of one traversal step.
type GraphFrame struct {
	Nodes []Node   `json:"nodes"`
	Edges []Edge   `json:"edges"`
	Order []string `json:"order"`
}

// Status announces a run lifecycle transition on the stream: one
// frame when a run starts, one when it reaches a terminal outcome.
type Status struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	State     string `json:"state"`
}

// SortRequest is the POST /api/sort body.
type SortRequest struct {
	Algorithm string `json:"algorithm"`
	Values    []int  `json:"values"`
	Speed     int    `json:"speed,omitempty"`
}

// RandomSpec asks for a generated input graph. A nil Seed seeds from
// the clock.
type RandomSpec struct {
	Vertices int    `json:"vertices"`
	Seed     *int64 `json:"seed,omitempty"`
}

// GraphRequest is the POST /api/graph body. Exactly one of Adjacency,
// Matrix or Random supplies the graph; Start defaults to the first
// vertex when empty.
type GraphRequest struct {
	Algorithm string      `json:"algorithm"`
	Adjacency string      `json:"adjacency,omitempty"`
	Matrix    string      `json:"matrix,omitempty"`
	Random    *RandomSpec `json:"random,omitempty"`
	Start     string      `json:"start,omitempty"`
	Speed     int         `json:"speed,omitempty"`
	Directed  bool        `json:"directed,omitempty"`
	Weighted  bool        `json:"weighted,omitempty"`
}

// AlgorithmInfo describes one catalog entry.
type AlgorithmInfo struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// AlgorithmsResponse is the GET /api/algorithms body.
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
	Count      int             `json:"count"`
}

// RunInfo describes a session to HTTP clients.
type RunInfo struct {
	ID        string `json:"id"`
	Algorithm string `json:"algorithm"`
	Kind      string `json:"kind"`
	Speed     int    `json:"speed"`
	Outcome   string `json:"outcome"`
}

// StopResponse is the POST /api/stop body.
type StopResponse struct {
	Stopped bool     `json:"stopped"`
	Run     *RunInfo `json:"run,omitempty"`
}

// StateResponse is the GET /api/state body: the active or most recent
// run plus the latest frame exactly as the stream carried it.
type StateResponse struct {
	Active bool            `json:"active"`
	Run    *RunInfo        `json:"run,omitempty"`
	Frame  json.RawMessage `json:"frame,omitempty"`
}

// ErrorResponse is the uniform error body of every endpoint.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func runInfo(s *run.Session) *RunInfo {
	return &RunInfo{
		ID:        s.ID,
		Algorithm: string(s.Algorithm),
		Kind:      string(s.Algorithm.Kind()),
		Speed:     s.Speed,
		Outcome:   string(s.Outcome()),
	}
}

func wireElements(s core.ArraySnapshot) []Element {
	out := make([]Element, len(s))
	for i, el := range s {
		out[i] = Element{
			Value:    el.Value,
			Compared: el.Compared,
			Swapped:  el.Swapped,
			Sorted:   el.Sorted,
		}
	}
	return out
}

func wireGraph(s core.GraphSnapshot) *GraphFrame {
	f := &GraphFrame{
		Nodes: make([]Node, len(s.Nodes)),
		Edges: make([]Edge, len(s.Edges)),
		Order: append([]string(nil), s.Order...),
	}
	for i, n := range s.Nodes {
		f.Nodes[i] = Node{
			ID:      n.ID,
			X:       n.X,
			Y:       n.Y,
			Current: n.Current,
			InQueue: n.InQueue,
			Visited: n.Visited,
			Dist:    wireDist(n.Dist),
		}
	}
	for i, e := range s.Edges {
		f.Edges[i] = Edge{
			From:        e.From,
			To:          e.To,
			Weight:      e.Weight,
			Highlighted: e.Highlighted,
		}
	}
	return f
}

// wireDist maps the unreached marker to null so clients never see the
// sentinel value.
func wireDist(d int64) *int64 {
	if d == core.Unreached {
		return nil
	}
	return &d
}

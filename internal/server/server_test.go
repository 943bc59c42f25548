package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/internal/config"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/internal/server"
	"github.com/katalvlaran/lvlviz/run"
	"github.com/katalvlaran/lvlviz/step"
)

type testEnv struct {
	Ctrl   *run.Controller
	Hub    *server.Hub
	Router *gin.Engine
}

// testServer assembles the serving stack headlessly: frames publish
// through the hub with no pacing delay. Pass extra run options to
// change that, e.g. run.WithTimerConstructor(step.NewTimer).
func testServer(t *testing.T, cfg *config.Config, extra ...run.Option) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = config.Default()
	}
	log := logging.NewNop()
	hub := server.NewHub(log)
	t.Cleanup(hub.Close)

	reg := prometheus.NewRegistry()
	opts := []run.Option{
		run.WithLogger(log),
		run.WithMetrics(run.NewMetrics(reg)),
		run.WithArraySink(hub),
		run.WithGraphSink(hub),
		run.WithTimerConstructor(step.Immediate),
	}
	ctrl := run.New(append(opts, extra...)...)
	srv := server.NewServer(cfg, log, ctrl, hub, reg)

	return &testEnv{Ctrl: ctrl, Hub: hub, Router: srv.Routes()}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		buf.Write(data)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// waitDone blocks until the run with the given id reaches a terminal
// outcome and returns its session.
func (e *testEnv) waitDone(t *testing.T, id string) *run.Session {
	t.Helper()
	var sess *run.Session
	require.Eventually(t, func() bool {
		sess = e.Ctrl.Last()
		return sess != nil && sess.ID == id && sess.Outcome() != run.OutcomeRunning
	}, 2*time.Second, 5*time.Millisecond)
	return sess
}

func TestHealthz(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("GET", "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lvlviz")
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListAlgorithms(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("GET", "/api/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.AlgorithmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Count)
	assert.Equal(t, server.AlgorithmInfo{ID: "bubble", Kind: "sort"}, resp.Algorithms[0])
	assert.Contains(t, resp.Algorithms, server.AlgorithmInfo{ID: "bellman-ford", Kind: "graph"})
}

func TestCORSPreflight(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("OPTIONS", "/api/sort", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestStartSortRunsToCompletion(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/sort", server.SortRequest{
		Algorithm: "bubble",
		Values:    []int{3, 1, 2},
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, "bubble", info.Algorithm)
	assert.Equal(t, "sort", info.Kind)
	assert.Equal(t, step.DefaultSpeed, info.Speed, "omitted speed falls back to the configured default")

	sess := env.waitDone(t, info.ID)
	assert.Equal(t, run.OutcomeCompleted, sess.Outcome())

	w = env.do("GET", "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state server.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Active)
	require.NotNil(t, state.Run)
	assert.Equal(t, info.ID, state.Run.ID)
	assert.Equal(t, string(run.OutcomeCompleted), state.Run.Outcome)
	assert.Contains(t, string(state.Frame), `"type"`)
}

func TestStartSortValidation(t *testing.T) {
	tests := []struct {
		name string
		body server.SortRequest
		want string
	}{
		{
			name: "unknown algorithm",
			body: server.SortRequest{Algorithm: "bogo", Values: []int{1}},
			want: "unknown algorithm",
		},
		{
			name: "graph algorithm on the sort endpoint",
			body: server.SortRequest{Algorithm: "bfs", Values: []int{1}},
			want: "unknown algorithm",
		},
		{
			name: "empty values",
			body: server.SortRequest{Algorithm: "bubble"},
			want: "empty input",
		},
		{
			name: "speed out of range",
			body: server.SortRequest{Algorithm: "bubble", Values: []int{1}, Speed: 99},
			want: "speed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testServer(t, nil)

			w := env.do("POST", "/api/sort", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestStartSortInvalidJSON(t *testing.T) {
	env := testServer(t, nil)

	req := httptest.NewRequest("POST", "/api/sort", bytes.NewReader([]byte("not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSortValueCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxArrayLen = 3
	env := testServer(t, cfg)

	w := env.do("POST", "/api/sort", server.SortRequest{
		Algorithm: "quick",
		Values:    []int{4, 3, 2, 1},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many values")
}

func TestStartGraphAdjacency(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "bfs",
		Adjacency: "A: B, C\nB: D\nC: D\nD:",
		Start:     "A",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "graph", info.Kind)

	sess := env.waitDone(t, info.ID)
	assert.Equal(t, run.OutcomeCompleted, sess.Outcome())
	require.NotNil(t, sess.Result())
	assert.Equal(t, []string{"A", "B", "C", "D"}, sess.Result().Order)
}

func TestStartGraphMatrixDefaultsStart(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "dfs",
		Matrix:    "A B\nA 0 1\nB 1 0",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	sess := env.waitDone(t, info.ID)

	require.NotNil(t, sess.Result())
	assert.Equal(t, []string{"A", "B"}, sess.Result().Order,
		"an omitted start defaults to the first vertex")
}

func TestStartGraphRandom(t *testing.T) {
	env := testServer(t, nil)
	seed := int64(7)

	w := env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "dijkstra",
		Random:    &server.RandomSpec{Vertices: 6, Seed: &seed},
		Weighted:  true,
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	sess := env.waitDone(t, info.ID)

	assert.Equal(t, run.OutcomeCompleted, sess.Outcome())
	require.NotNil(t, sess.Result())
	assert.Len(t, sess.Result().Order, 6, "the generated graph is connected")
}

func TestStartGraphValidation(t *testing.T) {
	tests := []struct {
		name string
		body server.GraphRequest
		want string
	}{
		{
			name: "no graph source",
			body: server.GraphRequest{Algorithm: "bfs"},
			want: "exactly one",
		},
		{
			name: "two graph sources",
			body: server.GraphRequest{
				Algorithm: "bfs",
				Adjacency: "A:",
				Matrix:    "A\nA 0",
			},
			want: "exactly one",
		},
		{
			name: "sort algorithm on the graph endpoint",
			body: server.GraphRequest{Algorithm: "merge", Adjacency: "A: B\nB:"},
			want: "unknown algorithm",
		},
		{
			name: "malformed adjacency",
			body: server.GraphRequest{Algorithm: "bfs", Adjacency: "A B C"},
			want: "malformed",
		},
		{
			name: "matrix shape mismatch",
			body: server.GraphRequest{Algorithm: "bfs", Matrix: "A B\nA 0 1"},
			want: "shape",
		},
		{
			name: "random too small",
			body: server.GraphRequest{
				Algorithm: "bfs",
				Random:    &server.RandomSpec{Vertices: 1},
			},
			want: "at least 2",
		},
		{
			name: "start vertex missing",
			body: server.GraphRequest{
				Algorithm: "bfs",
				Adjacency: "A: B\nB:",
				Start:     "Z",
			},
			want: "start vertex",
		},
		{
			name: "dijkstra rejects negative weights",
			body: server.GraphRequest{
				Algorithm: "dijkstra",
				Adjacency: "A: B(-2)\nB:",
				Weighted:  true,
			},
			want: "negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testServer(t, nil)

			w := env.do("POST", "/api/graph", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestStartGraphVertexCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxVertices = 3
	env := testServer(t, cfg)

	w := env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "bfs",
		Random:    &server.RandomSpec{Vertices: 5},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many vertices")

	w = env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "bfs",
		Adjacency: "A: B\nB: C\nC: D\nD:",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too many vertices")
}

func TestBellmanFordAcceptsNegativeWeights(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/graph", server.GraphRequest{
		Algorithm: "bellman-ford",
		Adjacency: "A: B(-2)\nB: C(1)\nC:",
		Directed:  true,
		Weighted:  true,
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	sess := env.waitDone(t, info.ID)
	assert.Equal(t, run.OutcomeCompleted, sess.Outcome())
}

func TestStopWithoutActiveRun(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.StopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Stopped)
	assert.Nil(t, resp.Run)
}

func TestConflictAndStop(t *testing.T) {
	// System timers at the slowest level: the run parks in its first
	// 1000ms pause, where the conflict and the stop catch it.
	env := testServer(t, nil, run.WithTimerConstructor(step.NewTimer))

	w := env.do("POST", "/api/sort", server.SortRequest{
		Algorithm: "insertion",
		Values:    []int{5, 4, 3, 2, 1},
		Speed:     step.MinSpeed,
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	var first server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = env.do("GET", "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state server.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Active)
	require.NotNil(t, state.Run)
	assert.Equal(t, string(run.OutcomeRunning), state.Run.Outcome)

	w = env.do("POST", "/api/sort", server.SortRequest{
		Algorithm: "bubble",
		Values:    []int{2, 1},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "active")

	w = env.do("POST", "/api/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stop server.StopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stop))
	assert.True(t, stop.Stopped)
	require.NotNil(t, stop.Run)
	assert.Equal(t, first.ID, stop.Run.ID)
	assert.Equal(t, string(run.OutcomeCanceled), stop.Run.Outcome)
}

func TestStateBeforeAnyRun(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("GET", "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state server.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Active)
	assert.Nil(t, state.Run)
	assert.Empty(t, state.Frame)
}

func TestMetricsEndpoint(t *testing.T) {
	env := testServer(t, nil)

	w := env.do("POST", "/api/sort", server.SortRequest{
		Algorithm: "merge",
		Values:    []int{2, 1},
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	var info server.RunInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	env.waitDone(t, info.ID)

	w = env.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lvlviz_runs_total")
	assert.Contains(t, w.Body.String(), "lvlviz_frames_total")
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvlviz"
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/parse"
	"github.com/katalvlaran/lvlviz/randgraph"
	"github.com/katalvlaran/lvlviz/run"
	"github.com/katalvlaran/lvlviz/traverse"
)

// Request validation sentinels.
var (
	// ErrBadJSON is returned for a body gin cannot bind.
	ErrBadJSON = errors.New("server: malformed request body")

	// ErrGraphSource is returned unless exactly one graph source is
	// present in a graph request.
	ErrGraphSource = errors.New("server: exactly one of adjacency, matrix or random is required")

	// ErrTooManyValues is returned when a sort request exceeds the
	// configured array cap.
	ErrTooManyValues = errors.New("server: too many values")

	// ErrTooManyVertices is returned when a graph exceeds the
	// configured vertex cap.
	ErrTooManyVertices = errors.New("server: too many vertices")
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": lvlviz.Name,
		"version": lvlviz.Version,
		"status":  "ok",
	})
}

func (s *Server) listAlgorithms(c *gin.Context) {
	catalog := run.Catalog()
	infos := make([]AlgorithmInfo, len(catalog))
	for i, algo := range catalog {
		infos[i] = AlgorithmInfo{ID: string(algo), Kind: string(algo.Kind())}
	}
	c.JSON(http.StatusOK, AlgorithmsResponse{
		Algorithms: infos,
		Count:      len(infos),
	})
}

func (s *Server) startSort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest,
			fmt.Errorf("%w: %v", ErrBadJSON, err))
		return
	}
	if len(req.Values) > s.cfg.MaxArrayLen {
		s.respondError(c, http.StatusBadRequest,
			fmt.Errorf("%w: %d over the cap of %d",
				ErrTooManyValues, len(req.Values), s.cfg.MaxArrayLen))
		return
	}

	sess, err := s.ctrl.StartSort(
		run.Algorithm(req.Algorithm), req.Values,
		run.WithSpeed(s.speedOrDefault(req.Speed)),
	)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	s.announce(sess)
	c.JSON(http.StatusAccepted, runInfo(sess))
}

func (s *Server) startGraph(c *gin.Context) {
	var req GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest,
			fmt.Errorf("%w: %v", ErrBadJSON, err))
		return
	}

	g, pos, start, err := s.buildGraph(&req)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	opts := []run.StartOption{run.WithSpeed(s.speedOrDefault(req.Speed))}
	if pos != nil {
		opts = append(opts, run.WithPositions(pos))
	}

	sess, err := s.ctrl.StartTraversal(run.Algorithm(req.Algorithm), g, start, opts...)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}

	s.announce(sess)
	c.JSON(http.StatusAccepted, runInfo(sess))
}

// buildGraph materializes the request's one graph source and resolves
// the start vertex, first listed when the request names none.
func (s *Server) buildGraph(req *GraphRequest) (*core.Graph, map[string]core.Position, string, error) {
	sources := 0
	if req.Adjacency != "" {
		sources++
	}
	if req.Matrix != "" {
		sources++
	}
	if req.Random != nil {
		sources++
	}
	if sources != 1 {
		return nil, nil, "", ErrGraphSource
	}

	var (
		g   *core.Graph
		pos map[string]core.Position
		err error
	)
	switch {
	case req.Adjacency != "":
		g, err = parse.List(req.Adjacency, parseOptions(req)...)
	case req.Matrix != "":
		g, err = parse.Matrix(req.Matrix, parseOptions(req)...)
	default:
		if req.Random.Vertices > s.cfg.MaxVertices {
			return nil, nil, "", fmt.Errorf("%w: %d over the cap of %d",
				ErrTooManyVertices, req.Random.Vertices, s.cfg.MaxVertices)
		}
		g, pos, err = randgraph.Generate(req.Random.Vertices, randOptions(req)...)
	}
	if err != nil {
		return nil, nil, "", err
	}

	if g.VertexCount() == 0 {
		return nil, nil, "", traverse.ErrEmptyGraph
	}
	if n := g.VertexCount(); n > s.cfg.MaxVertices {
		return nil, nil, "", fmt.Errorf("%w: %d over the cap of %d",
			ErrTooManyVertices, n, s.cfg.MaxVertices)
	}

	start := req.Start
	if start == "" {
		start = g.Vertices()[0]
	}
	return g, pos, start, nil
}

func parseOptions(req *GraphRequest) []parse.Option {
	opts := []parse.Option{parse.WithDirected(req.Directed)}
	if req.Weighted {
		opts = append(opts, parse.WithWeighted())
	}
	return opts
}

func randOptions(req *GraphRequest) []randgraph.Option {
	opts := []randgraph.Option{randgraph.WithDirected(req.Directed)}
	if req.Weighted {
		opts = append(opts, randgraph.WithWeighted())
	}
	if req.Random.Seed != nil {
		opts = append(opts, randgraph.WithSeed(*req.Random.Seed))
	}
	return opts
}

func (s *Server) handleStop(c *gin.Context) {
	sess := s.ctrl.Stop()
	if sess == nil {
		c.JSON(http.StatusOK, StopResponse{Stopped: false})
		return
	}
	c.JSON(http.StatusOK, StopResponse{Stopped: true, Run: runInfo(sess)})
}

func (s *Server) handleState(c *gin.Context) {
	var resp StateResponse
	if sess := s.ctrl.Active(); sess != nil {
		resp.Active = true
		resp.Run = runInfo(sess)
	} else if last := s.ctrl.Last(); last != nil {
		resp.Run = runInfo(last)
	}
	if latest := s.hub.Latest(); latest != nil {
		resp.Frame = json.RawMessage(latest)
	}
	c.JSON(http.StatusOK, resp)
}

// announce streams the run's lifecycle: one status frame now, one
// when the session turns terminal.
func (s *Server) announce(sess *run.Session) {
	s.hub.PublishStatus(Status{
		RunID:     sess.ID,
		Algorithm: string(sess.Algorithm),
		State:     string(run.OutcomeRunning),
	})
	go func() {
		sess.Wait()
		s.hub.PublishStatus(Status{
			RunID:     sess.ID,
			Algorithm: string(sess.Algorithm),
			State:     string(sess.Outcome()),
		})
	}()
}

func (s *Server) speedOrDefault(speed int) int {
	if speed == 0 {
		return s.cfg.DefaultSpeed
	}
	return speed
}

func (s *Server) respondError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{
		Error:  err.Error(),
		Status: status,
	})
}

// statusFor maps start errors onto HTTP statuses: a busy controller
// conflicts, everything else a start can return is bad input.
func statusFor(err error) int {
	if errors.Is(err, run.ErrActive) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

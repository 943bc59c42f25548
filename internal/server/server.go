package server

import (
	"log/slog"
	"net/http"

	glog "github.com/gin-contrib/slog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvlviz/internal/config"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/run"
)

// Server wires the run controller and the hub into the HTTP surface.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	ctrl     *run.Controller
	hub      *Hub
	gatherer prometheus.Gatherer
}

// NewServer creates the HTTP surface. gatherer backs GET /metrics;
// pass the registry the controller's metrics live on. A nil logger
// means silent operation.
func NewServer(cfg *config.Config, log *slog.Logger, ctrl *run.Controller, hub *Hub, gatherer prometheus.Gatherer) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	return &Server{cfg: cfg, log: log, ctrl: ctrl, hub: hub, gatherer: gatherer}
}

// Routes configures and returns the HTTP router with all endpoints.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(glog.SetLogger(
		glog.WithLogger(func(c *gin.Context, l *slog.Logger) *slog.Logger {
			return s.log
		}),
	))

	// CORS middleware for the visualizer frontend.
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set(
			"Access-Control-Allow-Methods",
			"GET, POST, OPTIONS",
		)
		c.Writer.Header().Set(
			"Access-Control-Allow-Headers",
			"Content-Type",
		)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/algorithms", s.listAlgorithms)
		api.POST("/sort", s.startSort)
		api.POST("/graph", s.startGraph)
		api.POST("/stop", s.handleStop)
		api.GET("/state", s.handleState)
	}

	router.GET("/ws", s.hub.Handle)
	router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}),
	))

	return router
}

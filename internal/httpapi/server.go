// Package httpapi exposes a running simulation over HTTP.
//
// Routes:
//
//	GET  /healthz         liveness and run id
//	GET  /items           current day and every item
//	GET  /items/:index    one item by position
//	POST /days            advance {"days": n} days, default 1
//	POST /reset           rewind to the seed inventory
//
// Day advances are serialised by the simulator, so an item is never
// updated by two requests at once.
package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handiism/gilded-rose/internal/simulation"
	"go.uber.org/zap"
)

// Server wires HTTP routes to a simulator.
type Server struct {
	sim     *simulation.Simulator
	logger  *zap.Logger
	maxDays int
}

// New creates a new Server. maxDays bounds a single POST /days request.
func New(sim *simulation.Simulator, logger *zap.Logger, maxDays int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxDays < 1 {
		maxDays = 1
	}
	return &Server{sim: sim, logger: logger, maxDays: maxDays}
}

// Handler returns the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", s.health)
	r.GET("/items", s.listItems)
	r.GET("/items/:index", s.getItem)
	r.POST("/days", s.advanceDays)
	r.POST("/reset", s.reset)

	return r
}

type advanceRequest struct {
	Days *int `json:"days"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "run_id": s.sim.RunID()})
}

func (s *Server) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, s.sim.Snapshot())
}

func (s *Server) getItem(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	snap := s.sim.Snapshot()
	if idx < 0 || idx >= len(snap.Items) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": snap.Day, "item": snap.Items[idx]})
}

func (s *Server) advanceDays(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	days := 1
	if req.Days != nil {
		days = *req.Days
	}
	if days < 1 || days > s.maxDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days out of range", "min": 1, "max": s.maxDays})
		return
	}

	snapshots, err := s.sim.Run(c.Request.Context(), days)
	if err != nil {
		// Days completed before the failure stay applied; report where the shop is.
		advanced := max(len(snapshots)-1, 0)
		s.logger.Warn("Advance failed",
			zap.Int("days", days),
			zap.Int("advanced", advanced),
			zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":    err.Error(),
			"advanced": advanced,
			"day":      s.sim.Day(),
		})
		return
	}

	c.JSON(http.StatusOK, snapshots[len(snapshots)-1])
}

func (s *Server) reset(c *gin.Context) {
	s.sim.Reset()
	c.JSON(http.StatusOK, s.sim.Snapshot())
}

// logRequests logs every request with zap.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

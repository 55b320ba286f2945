package ui

import (
	"log"
	"net/http"

	"normtest/app"
	"normtest/ui/middleware"

	"github.com/gin-gonic/gin"
)

// Server exposes the NormalityService over HTTP
type Server struct {
	router  *gin.Engine
	service *app.NormalityService
}

// NewServer creates a new API server with its routes configured
func NewServer(service *app.NormalityService) *Server {
	s := &Server{
		router:  gin.New(),
		service: service,
	}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.TestContext(s.service.Defaults()))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	// Registry and table lookups
	api.GET("/tests", s.handleListTests)
	api.GET("/tests/:id", s.handleDescribeTest)
	api.GET("/tests/:id/critical", s.handleCriticalValue)
	api.GET("/tests/:id/table.xlsx", s.handleTableExport)

	// Decisions
	api.POST("/fit", s.handleFit)
	api.POST("/evaluate", s.handleEvaluate)
	api.POST("/evaluate/all", s.handleEvaluateAll)

	// Ledger
	api.GET("/results", s.handleRecentResults)
	api.GET("/results/:id", s.handleGetResult)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Handler returns the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting normtest API on http://%s", addr)
	return s.router.Run(addr)
}

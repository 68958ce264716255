package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"voice2text/internal/api/middleware"
	v1routes "voice2text/internal/api/v1/routes"
	"voice2text/internal/api/v1/services"
	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/repository"
)

// Config holds API server settings.
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
}

// Server is the local HTTP front for capture, file transcription, backend
// discovery and history.
type Server struct {
	config     Config
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wires the router. workerConfig is the resolved defaults+env
// worker configuration; request bodies may override individual fields.
func NewServer(config Config, workerConfig stt_worker.Config, db repository.TranscriptionDAO, logger *zap.Logger) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	serviceContainer := &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(workerConfig, db),
		BackendService:       services.NewBackendService(workerConfig.PythonPath),
	}
	v1 := router.Group("/api/v1")
	v1routes.RegisterRoutes(v1, serviceContainer)

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	return &Server{
		config: config,
		logger: logger,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
	}
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

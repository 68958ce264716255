package routes

import (
	"github.com/gin-gonic/gin"

	"voice2text/internal/api/v1/handlers"
)

// ServiceContainer bundles the service implementations the v1 routes need.
type ServiceContainer struct {
	TranscriptionService handlers.TranscriptionRunner
	BackendService       handlers.BackendLister
}

// RegisterRoutes mounts the v1 API onto the given group.
func RegisterRoutes(group *gin.RouterGroup, services *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(services.TranscriptionService)
	backendHandler := handlers.NewBackendHandler(services.BackendService)

	group.POST("/transcriptions", transcriptionHandler.Transcribe)
	group.GET("/transcriptions", transcriptionHandler.List)
	group.GET("/backends", backendHandler.List)
}

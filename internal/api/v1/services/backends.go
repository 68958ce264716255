package services

import (
	"context"

	"voice2text/internal/app/api/stt_worker"
)

// BackendService exposes the worker's capability probe. Every call probes
// again; if callers want caching they own it.
type BackendService struct {
	pythonPath string
}

func NewBackendService(pythonPath string) *BackendService {
	return &BackendService{pythonPath: pythonPath}
}

// List returns the usable backends, empty when the probe fails.
func (s *BackendService) List(ctx context.Context) []string {
	return stt_worker.ListBackends(ctx, s.pythonPath)
}

package stt_worker

import (
	"voice2text/internal/app/api"
	"voice2text/internal/app/api/provider"
)

func init() {
	provider.Register("stt_worker", createWorkerTranscriber)
}

// createWorkerTranscriber builds the worker-backed provider from a generic
// settings map. Every setting is optional; missing keys fall back to the
// package defaults.
func createWorkerTranscriber(settings map[string]interface{}) (api.Transcriber, error) {
	var cfg Config
	if v, ok := settings["backend"].(string); ok {
		cfg.Backend = v
	}
	if v, ok := settings["model"].(string); ok {
		cfg.Model = v
	}
	if v, ok := settings["language"].(string); ok {
		cfg.Language = v
	}
	if v, ok := settings["python_path"].(string); ok {
		cfg.PythonPath = v
	}
	if v, ok := settings["script_path"].(string); ok {
		cfg.ScriptPath = v
	}
	// YAML decoding hands numbers over as float64 or int depending on source.
	switch v := settings["max_duration"].(type) {
	case float64:
		cfg.MaxDuration = int(v)
	case int:
		cfg.MaxDuration = v
	}
	return NewWorkerTranscriber(cfg), nil
}

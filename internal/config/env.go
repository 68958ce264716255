package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"voice2text/internal/app/api/stt_worker"
)

// Environment variables honored by the calling layer. The worker core never
// reads these itself; it receives a fully-resolved configuration.
const (
	EnvBackend     = "STT_BACKEND"
	EnvModel       = "STT_MODEL"
	EnvLanguage    = "STT_LANGUAGE"
	EnvMaxDuration = "STT_MAX_DURATION"
	EnvPython      = "STT_PYTHON"
	EnvScript      = "STT_SCRIPT"
)

// LoadEnv loads a .env file when one is present. Missing files are fine;
// system-wide environment variables may already be set.
func LoadEnv() error {
	envPaths := []string{".env", ".env.local"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}
	return nil
}

// WorkerConfigFromEnv collects the STT_* overrides into a worker config.
// Unset variables stay zero-valued so the merge keeps defaults; a malformed
// duration is reported instead of being silently dropped.
func WorkerConfigFromEnv() (stt_worker.Config, error) {
	cfg := stt_worker.Config{
		Backend:    strings.TrimSpace(os.Getenv(EnvBackend)),
		Model:      strings.TrimSpace(os.Getenv(EnvModel)),
		Language:   strings.TrimSpace(os.Getenv(EnvLanguage)),
		PythonPath: strings.TrimSpace(os.Getenv(EnvPython)),
		ScriptPath: strings.TrimSpace(os.Getenv(EnvScript)),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvMaxDuration)); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return stt_worker.Config{}, fmt.Errorf("invalid %s value %q: must be a positive integer", EnvMaxDuration, raw)
		}
		cfg.MaxDuration = seconds
	}

	return cfg, nil
}

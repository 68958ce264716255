package stt_worker

import (
	"os"
	"path/filepath"

	"voice2text/internal/app/util/files"
)

// Built-in defaults for the worker invocation. Explicit caller values win
// over environment-derived values, which win over these.
const (
	DefaultBackend     = "auto"
	DefaultModel       = "tiny"
	DefaultLanguage    = "en"
	DefaultMaxDuration = 30
	DefaultPython      = "python3"
)

// Backend names understood by the worker script.
const (
	BackendAuto          = "auto"
	BackendMoonshine     = "moonshine"
	BackendWhisper       = "whisper"
	BackendFasterWhisper = "faster-whisper"
)

// Config describes a single worker invocation. The zero value of a field
// means "not set"; resolve a full configuration with Merge before use.
type Config struct {
	// Backend selects the recognition engine, or "auto" to let the worker pick.
	Backend string
	// Model is the model size identifier, interpreted by the worker.
	Model string
	// Language is the transcription language code.
	Language string
	// MaxDuration is the maximum recording length in seconds. The limit is
	// advisory: the worker enforces it, this package does not.
	MaxDuration int
	// PythonPath is the interpreter used to run the worker script.
	PythonPath string
	// ScriptPath overrides the bundled worker script location.
	ScriptPath string
}

// DefaultConfig returns the built-in defaults. ScriptPath is left empty and
// resolved lazily so that a missing bundle only fails the call that needs it.
func DefaultConfig() Config {
	return Config{
		Backend:     DefaultBackend,
		Model:       DefaultModel,
		Language:    DefaultLanguage,
		MaxDuration: DefaultMaxDuration,
		PythonPath:  DefaultPython,
	}
}

// Merge overlays override onto base, field by field. A zero-valued override
// field keeps the base value. The merge is shallow and neither input is
// mutated.
func Merge(base, override Config) Config {
	merged := base
	if override.Backend != "" {
		merged.Backend = override.Backend
	}
	if override.Model != "" {
		merged.Model = override.Model
	}
	if override.Language != "" {
		merged.Language = override.Language
	}
	if override.MaxDuration > 0 {
		merged.MaxDuration = override.MaxDuration
	}
	if override.PythonPath != "" {
		merged.PythonPath = override.PythonPath
	}
	if override.ScriptPath != "" {
		merged.ScriptPath = override.ScriptPath
	}
	return merged
}

// DefaultScriptPath locates the bundled stt.py worker script. The lookup is
// anchored to the installed binary, not the caller's working directory:
// scripts/ sits next to the executable in a release layout. For `go run` and
// tests it falls back to scripts/ under the module root.
func DefaultScriptPath() (string, error) {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "scripts", "stt.py")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot, "scripts", "stt.py"), nil
}

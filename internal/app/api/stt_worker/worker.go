package stt_worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// WorkerTranscriber records speech and transcribes it by running the bundled
// Python worker script. One invocation spawns exactly one child process; the
// worker owns audio capture and recognition, this side owns spawning, stream
// collection and result reconciliation.
type WorkerTranscriber struct {
	cfg Config
}

// NewWorkerTranscriber creates a transcriber from cfg, filling unset fields
// with the built-in defaults.
func NewWorkerTranscriber(cfg Config) *WorkerTranscriber {
	return &WorkerTranscriber{cfg: Merge(DefaultConfig(), cfg)}
}

// Config returns the fully-resolved configuration in use.
func (wt *WorkerTranscriber) Config() Config {
	return wt.cfg
}

// Result is the worker's JSON envelope. Exactly one of Success/Error is
// meaningful: a successful result carries Text plus the backend and model the
// worker actually used, a failed one carries Error.
type Result struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Backend string `json:"backend,omitempty"`
	Model   string `json:"model,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failure builds a failed Result with the given message.
func Failure(message string) Result {
	return Result{Success: false, Error: message}
}

// Transcribe records from the microphone and returns the transcription. It
// never returns a Go error: every failure mode (spawn error, abnormal exit,
// malformed output) comes back as a failed Result, so callers branch on
// Result.Success instead of handling errors. The context is the caller's
// only abort mechanism; no timeout is enforced here.
func (wt *WorkerTranscriber) Transcribe(ctx context.Context) Result {
	return wt.run(ctx, nil)
}

// TranscribeFile transcribes an existing audio file instead of recording,
// using the worker's --audio-file mode. Same contract as Transcribe.
func (wt *WorkerTranscriber) TranscribeFile(ctx context.Context, audioPath string) Result {
	if audioPath == "" {
		return Failure("audio file path required")
	}
	return wt.run(ctx, []string{"--audio-file", audioPath})
}

// Transcript implements api.Transcriber for batch file conversion. The
// no-error contract of TranscribeFile is translated to a plain error at this
// boundary because the converter pipeline works with errors.
func (wt *WorkerTranscriber) Transcript(inputFilePath string) (string, error) {
	result := wt.TranscribeFile(context.Background(), inputFilePath)
	if !result.Success {
		return "", errors.New(result.Error)
	}
	return result.Text, nil
}

func (wt *WorkerTranscriber) run(ctx context.Context, extraArgs []string) Result {
	script := wt.cfg.ScriptPath
	if script == "" {
		var err error
		script, err = DefaultScriptPath()
		if err != nil {
			return Failure(fmt.Sprintf("failed to locate worker script: %v", err))
		}
	}

	args := buildArgs(script, wt.cfg)
	args = append(args, extraArgs...)

	cmd := exec.CommandContext(ctx, wt.cfg.PythonPath, args...)
	// The worker may prompt or read interactively; give it our stdin.
	cmd.Stdin = os.Stdin
	// Both pipes get a consumer before the process starts. Leaving either
	// unread can wedge the child on a full pipe buffer.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Failure(fmt.Sprintf("failed to start worker: %v", err))
	}

	// The stdout payload outranks the exit status: a worker can exit non-zero
	// and still report a well-formed envelope, and that envelope wins.
	output := strings.TrimSpace(stdout.String())
	if output == "" {
		if exitErr != nil {
			if diag := strings.TrimSpace(stderr.String()); diag != "" {
				return Failure(diag)
			}
			return Failure(fmt.Sprintf("worker exited with code %d", exitErr.ExitCode()))
		}
		return Failure("worker produced no output")
	}

	var result Result
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		return Failure(fmt.Sprintf("unexpected worker output: %s", output))
	}
	if !result.Success && result.Error == "" {
		result.Error = "worker reported failure without detail"
	}
	return result
}

// buildArgs assembles the worker command line. Flag names and ordering are
// the worker's CLI contract and must stay exactly as the script expects.
func buildArgs(scriptPath string, cfg Config) []string {
	return []string{
		scriptPath,
		"--backend", cfg.Backend,
		"--model", cfg.Model,
		"--language", cfg.Language,
		"--duration", strconv.Itoa(cfg.MaxDuration),
	}
}

package stt_worker

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
)

// ListBackends asks the worker which recognition backends are importable in
// the current Python environment. The probe never fails outward: spawn
// errors, crashes and unparseable output all degrade to an empty list, since
// "no backends" is itself the answer the caller needs. The result is built
// fresh on every call and never cached here; order and duplicates come back
// exactly as the worker reported them.
func ListBackends(ctx context.Context, pythonPath string) []string {
	scriptPath, err := DefaultScriptPath()
	if err != nil {
		return []string{}
	}
	return listBackends(ctx, pythonPath, scriptPath)
}

func listBackends(ctx context.Context, pythonPath, scriptPath string) []string {
	if pythonPath == "" {
		pythonPath = DefaultPython
	}

	cmd := exec.CommandContext(ctx, pythonPath, scriptPath, "--list-backends")
	cmd.Stdin = os.Stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	// stderr is unused on this path but still drained so the worker never
	// blocks on a full pipe.
	cmd.Stderr = &stderr

	// Exit status is irrelevant here; only the stdout payload decides.
	_ = cmd.Run()

	var payload struct {
		AvailableBackends []string `json:"available_backends"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &payload); err != nil {
		return []string{}
	}
	if payload.AvailableBackends == nil {
		return []string{}
	}
	return payload.AvailableBackends
}

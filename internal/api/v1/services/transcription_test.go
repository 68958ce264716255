package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/model"
)

func workerConfig(python, script string) stt_worker.Config {
	return stt_worker.Config{PythonPath: python, ScriptPath: script}
}

type memoryDAO struct {
	rows []model.Transcription
}

func (m *memoryDAO) Close() error { return nil }

func (m *memoryDAO) GetAllByUser(user string) ([]model.Transcription, error) {
	return m.rows, nil
}

func (m *memoryDAO) GetRecent(limit int) ([]model.Transcription, error) {
	if limit < len(m.rows) {
		return m.rows[:limit], nil
	}
	return m.rows, nil
}

func (m *memoryDAO) CheckIfFileProcessed(fileName string) (int, error) {
	return 0, os.ErrNotExist
}

func (m *memoryDAO) Record(t model.Transcription) error {
	m.rows = append(m.rows, t)
	return nil
}

func stubWorkerConfig(t *testing.T, body string) (pythonPath, scriptPath string) {
	t.Helper()
	scriptPath = filepath.Join(t.TempDir(), "stub_worker.sh")
	require.NoError(t, os.WriteFile(scriptPath, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return "/bin/sh", scriptPath
}

func TestCaptureSavesHistory(t *testing.T) {
	python, script := stubWorkerConfig(t,
		`echo '{"success":true,"text":"hi there","backend":"moonshine","model":"tiny"}'`)
	dao := &memoryDAO{}

	service := NewTranscriptionService(workerConfig(python, script), dao)
	result := service.Capture(context.Background(), workerConfig("", ""), "alice", true)

	require.True(t, result.Success)
	require.Len(t, dao.rows, 1)
	assert.Equal(t, "alice", dao.rows[0].User)
	assert.Equal(t, "hi there", dao.rows[0].Transcription)
	assert.Equal(t, "moonshine", dao.rows[0].Backend)
	assert.Empty(t, dao.rows[0].FileName)
}

func TestCaptureWithoutSave(t *testing.T) {
	python, script := stubWorkerConfig(t, `echo '{"success":true,"text":"hi"}'`)
	dao := &memoryDAO{}

	service := NewTranscriptionService(workerConfig(python, script), dao)
	result := service.Capture(context.Background(), workerConfig("", ""), "alice", false)

	assert.True(t, result.Success)
	assert.Empty(t, dao.rows)
}

func TestFailureSavedWithError(t *testing.T) {
	python, script := stubWorkerConfig(t,
		`echo '{"success":false,"error":"mic not found"}'`)
	dao := &memoryDAO{}

	service := NewTranscriptionService(workerConfig(python, script), dao)
	result := service.TranscribeFile(context.Background(), "/tmp/a.wav", workerConfig("", ""), "alice", true)

	require.False(t, result.Success)
	require.Len(t, dao.rows, 1)
	assert.True(t, dao.rows[0].HasError)
	assert.Equal(t, "mic not found", dao.rows[0].ErrorMessage)
	assert.Empty(t, dao.rows[0].Transcription)
	assert.Equal(t, "/tmp/a.wav", dao.rows[0].FileName)
}
